package ports

import "time"

// TokenIssuer creates and verifies the signed bearer tokens that prove a
// prior login. Tokens are self-contained; nothing is persisted on issue.
type TokenIssuer interface {
	// Issue returns a signed token embedding subject, expiring TTL from now.
	Issue(subject string) (string, error)
	// Decode verifies the signature and expiry and returns the embedded
	// subject and expiry instant. Any failure maps to domain.ErrInvalidToken.
	Decode(raw string) (subject string, expiresAt time.Time, err error)
}
