package domain

import "errors"

// Role represents a user role in the booking system
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
)

// ErrUnknownRole возвращается при неизвестном значении роли
var ErrUnknownRole = errors.New("unknown role")

// ParseRole валидирует и конвертирует строку в Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleFaculty:
		return RoleFaculty, nil
	default:
		return "", ErrUnknownRole
	}
}

// Requester resolved identity of the caller, supplied by the gateway.
// The service never verifies credentials itself.
type Requester struct {
	UserID int64
	Role   Role
}

// IsAdmin returns true for administrator requesters
func (r Requester) IsAdmin() bool {
	return r.Role == RoleAdmin
}
