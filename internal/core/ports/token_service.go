package ports

// TokenService issues and verifies the bearer credentials that prove an
// identity on protected routes.
//
// Issue trusts the identity it is handed: there is no password or OTP check
// in front of it. Any real authentication step belongs in between the login
// handler and this interface.
type TokenService interface {
	// Issue returns a signed credential embedding identity, valid for the
	// configured TTL.
	Issue(identity string) (string, error)
	// Verify validates a raw "Bearer <token>" header value and returns the
	// identity embedded at issuance. It returns domain.ErrUnauthenticated
	// for a missing or malformed header and for invalid or expired tokens.
	Verify(raw string) (string, error)
}
