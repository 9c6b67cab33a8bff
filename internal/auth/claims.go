package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleGuest   Role = "GUEST"
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleMaster  Role = "MASTER"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims — полезная нагрузка access-токена auth-сервиса.
type Claims struct {
	jwt.RegisteredClaims
	Email    string    `json:"email"`
	Username string    `json:"username,omitempty"`
	Role     Role      `json:"role"`
	Type     TokenType `json:"type"`
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleManager, RoleMaster:
		return true
	}
	return false
}

var roleRank = map[Role]int{
	RoleGuest:   0,
	RoleUser:    1,
	RoleManager: 2,
	RoleMaster:  3,
}

// AtLeast — сравнение ролей по иерархии GUEST < USER < MANAGER < MASTER.
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}
