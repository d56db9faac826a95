package dto

type SignupInput struct {
	Name     string `json:"name"`
	Class    string `json:"class"`
	RollNo   string `json:"rollNo"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
