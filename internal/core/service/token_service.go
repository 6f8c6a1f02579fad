package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tasktrail/task-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// JWTIssuer signs and verifies HS256 bearer tokens carrying a subject claim.
// The signing secret is shared by the whole process and read-only after startup.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token with claims {sub: subject, exp: now+ttl}.
func (i *JWTIssuer) Issue(subject string) (string, error) {
	now := i.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Decode verifies the signature and expiry and returns the embedded subject.
// Every failure mode (malformed, bad signature, expired, wrong algorithm)
// collapses into domain.ErrInvalidToken.
func (i *JWTIssuer) Decode(raw string) (string, time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil || !tkn.Valid {
		return "", time.Time{}, domain.ErrInvalidToken
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", time.Time{}, domain.ErrInvalidToken
	}
	return claims.Subject, claims.ExpiresAt.Time, nil
}
