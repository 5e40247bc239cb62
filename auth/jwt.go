package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// verifyJWT validates tokenString as an HMAC-signed JWT against the
// configured key. Expiry and not-before claims are enforced by the parser.
func (g *Guard) verifyJWT(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return g.config.JWTKey, nil
	})
	if err != nil {
		return false
	}
	return token.Valid
}
