package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("token invalid")

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 tokens carrying a user id and an
// expiry ttl after issuance.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for both signing and verification.
func (j *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	j.now = now
	return j
}

func (j *JWTIssuer) Issue(userID string) (string, error) {
	now := j.now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}).SignedString(j.secret)
}

// Verify returns the user id of a valid, unexpired token.
func (j *JWTIssuer) Verify(token string) (string, error) {
	c, err := ParseJWT(j.secret, token, j.now)
	if err != nil {
		return "", err
	}
	return c.UserID, nil
}

func ParseJWT(secret []byte, token string, now func() time.Time) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, errors.Join(ErrTokenInvalid, err)
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid && c.UserID != "" {
		return c, nil
	}
	return nil, ErrTokenInvalid
}
