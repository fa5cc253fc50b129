package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "administrator"
	RoleStandard = "standard"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrEmptyPayload = errors.New("no update data provided")
var ErrForbidden = errors.New("access forbidden")

// User models an account that can authenticate against the API.
// DateOfBirth is optional and carried verbatim as YYYY-MM-DD.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	DateOfBirth  *string   `json:"date_of_birth,omitempty"`
	Role         string    `json:"role" gorm:"size:20;not null;default:standard"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
