// Package session turns identity-service bearer tokens into the Session value
// that services receive explicitly.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"arena-wallet/internal/model"

	"github.com/golang-jwt/jwt/v4"
)

// Session is the signed-in user for the lifetime of one token.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses an HS256 token. The subject claim is the user id.
func (v *Verifier) Verify(token string) (Session, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return Session{}, fmt.Errorf("%w: missing token", model.ErrUnauthenticated)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Session{}, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}

	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return Session{}, fmt.Errorf("%w: unexpected issuer %q", model.ErrUnauthenticated, claims.Issuer)
	}
	if claims.Subject == "" {
		return Session{}, fmt.Errorf("%w: token has no subject", model.ErrUnauthenticated)
	}

	s := Session{UserID: claims.Subject, Email: claims.Email}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// Issue signs a token for the given user. The identity service does this in
// production; the service uses it for tooling and tests.
func (v *Verifier) Issue(userID, email string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
