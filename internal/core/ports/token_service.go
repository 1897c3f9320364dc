package ports

// TokenService issues and validates the signed, self-contained tokens used
// for stateless authentication. The subject is always the user's email.
type TokenService interface {
	// IssueAccessToken builds a short-lived signed token for the subject.
	IssueAccessToken(subject string) (string, error)
	// IssueRefreshToken builds a long-lived signed token, optionally
	// embedding extra string-keyed claims.
	IssueRefreshToken(subject string, extraClaims map[string]any) (string, error)
	// ExtractSubject signature-verifies the token and returns its subject.
	// Returns domain.ErrTokenInvalid for malformed or unsigned input.
	ExtractSubject(token string) (string, error)
	// IsValid reports whether the token belongs to expectedSubject and has
	// not expired. Any parse or signature failure yields false, never an
	// error or panic.
	IsValid(token, expectedSubject string) bool
}
