package auth

// LoginData is the view model for the sign-in page, which carries both the
// login form and the sign-up form.
type LoginData struct {
	// Identifier is the email or login id submitted on the last failed attempt.
	Identifier string
	// SignUpEmail is the email submitted on the last failed sign-up.
	SignUpEmail string
	// ShowSignUp opens the sign-up form instead of the login form.
	ShowSignUp bool
}
