package security

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenClaims is the authenticated identity carried through a request
// context, however the request was authenticated.
type TokenClaims struct {
	User       string `json:"u"`
	Email      string `json:"e"`
	ExpireTime int64  `json:"exp"`
	NotBefore  int64  `json:"nbf"`
}

func NewTokenClaims(userID, email string, expireTime int64) TokenClaims {
	return TokenClaims{
		User:       userID,
		Email:      email,
		ExpireTime: expireTime,
		NotBefore:  time.Now().Unix() - 1,
	}
}

func (t TokenClaims) GetUser() string {
	return t.User
}

// Valid implements jwt.Claims.
func (t TokenClaims) Valid() error {
	now := time.Now().Unix()
	if t.User == "" {
		return fmt.Errorf("token has no user")
	}
	if t.ExpireTime != 0 && t.ExpireTime < now {
		return fmt.Errorf("token expired")
	}
	if t.NotBefore > now {
		return fmt.Errorf("token not yet valid")
	}
	return nil
}

// GenAuthToken signs claims into a compact JWT with the service secret.
func GenAuthToken(claims TokenClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAuthToken verifies the signature and the claims' validity window.
func ParseAuthToken(tokenValue, secret string) (TokenClaims, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenValue, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return TokenClaims{}, err
	}
	if !token.Valid {
		return TokenClaims{}, fmt.Errorf("invalid token")
	}
	return claims, nil
}
