package constant

const (
	MinPasswordLength = 6

	// Sign-in log bounds.
	SignInLogCap        = 500
	DefaultSignInLimit  = 100
	CredentialsProvider = "credentials"
)
