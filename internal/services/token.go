package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"travelmitr/internal/domain"
)

// Tokens issues and verifies HS256 session tokens carrying a user_id claim.
type Tokens struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (t Tokens) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t Tokens) Issue(userID domain.ID) (string, error) {
	if len(t.Secret) == 0 {
		return "", domain.InternalError{Msg: "jwt secret is not configured"}
	}
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(userID),
		"iat":     now.Unix(),
		"exp":     now.Add(t.TTL).Unix(),
	})
	signed, err := token.SignedString(t.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, nil
}

// Parse verifies raw and returns its user id. Every failure is UnauthorizedError.
func (t Tokens) Parse(raw string) (domain.ID, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		return t.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.UnauthorizedError{Msg: "token expired"}
		}
		return 0, domain.UnauthorizedError{Msg: "invalid token"}
	}

	v, ok := claims["user_id"].(float64)
	if !ok || v <= 0 {
		return 0, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return domain.ID(v), nil
}
