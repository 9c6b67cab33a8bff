package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenRequired    = errors.New("authorization header required")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token has expired")
	ErrWrongTokenType   = errors.New("invalid token type")
	ErrForbidden        = errors.New("insufficient permissions")
	ErrUnknownSignAlgo  = errors.New("invalid signing method")
)

// ParseAccessToken проверяет подпись HS256 и возвращает claims access-токена.
// Refresh-токены и токены с неизвестной ролью отклоняются.
func ParseAccessToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnknownSignAlgo
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Type != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}

	if !claims.Role.IsValid() {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
