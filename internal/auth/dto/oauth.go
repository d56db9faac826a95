package dto

// OAuthSignInInput carries an identity already verified by the federated
// layer. No password is involved; the core only records the sign-in.
type OAuthSignInInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
