package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// Tokens signs HS256 access tokens read back by middleware.AuthMiddleware.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration, now func() time.Time) *Tokens {
	if now == nil {
		now = time.Now
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: now}
}

func (t *Tokens) Issue(u *models.User) (string, time.Time, error) {
	issued := t.now()
	exp := issued.Add(t.ttl)

	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  exp.Unix(),
		"iat":  issued.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
