package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func accessClaims(role Role) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "anna@mail.ru",
		Role:  role,
		Type:  TokenTypeAccess,
	}
}

func TestParseAccessToken(t *testing.T) {
	t.Run("валидный access-токен", func(t *testing.T) {
		claims, err := ParseAccessToken(signToken(t, accessClaims(RoleUser)), testSecret)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.Subject)
		assert.Equal(t, RoleUser, claims.Role)
	})

	t.Run("refresh-токен отклоняется", func(t *testing.T) {
		c := accessClaims(RoleUser)
		c.Type = TokenTypeRefresh
		_, err := ParseAccessToken(signToken(t, c), testSecret)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		c := accessClaims(RoleUser)
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		_, err := ParseAccessToken(signToken(t, c), testSecret)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("чужой секрет", func(t *testing.T) {
		_, err := ParseAccessToken(signToken(t, accessClaims(RoleUser)), "other-secret")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("неизвестная роль", func(t *testing.T) {
		c := accessClaims(Role("ADMIN"))
		_, err := ParseAccessToken(signToken(t, c), testSecret)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestRoleHierarchy(t *testing.T) {
	assert.True(t, RoleMaster.AtLeast(RoleManager))
	assert.True(t, RoleManager.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(RoleUser))
	assert.False(t, RoleUser.AtLeast(RoleManager))
	assert.False(t, RoleGuest.AtLeast(RoleUser))
}

func TestRequiredRole(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   Role
	}{
		{"GET", "/health", RoleGuest},
		{"GET", "/metrics", RoleGuest},
		{"GET", "/profiles", RoleUser},
		{"GET", "/profiles/e-1024", RoleUser},
		{"POST", "/profiles", RoleManager},
		{"DELETE", "/profiles/e-1024", RoleManager},
		{"GET", "/employments/e-1024/experience", RoleUser},
		{"PUT", "/employments/42", RoleManager},
		{"POST", "/producer/employment", RoleManager},
		{"GET", "/audit", RoleMaster},
		{"POST", "/admin/reset", RoleMaster},
		// пути вне таблицы не обходят авторизацию
		{"GET", "/unknown", RoleUser},
		{"POST", "/profiles/e-1024/extra", RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredRole(tt.method, tt.path))
		})
	}
}

func TestMatchPattern(t *testing.T) {
	assert.True(t, matchPattern("/profiles/{employee_id}", "/profiles/e-1"))
	assert.False(t, matchPattern("/profiles/{employee_id}", "/profiles"))
	assert.False(t, matchPattern("/profiles/{employee_id}", "/profiles/e-1/x"))
	assert.True(t, matchPattern("/employments/{id}/experience", "/employments/7/experience"))
}
