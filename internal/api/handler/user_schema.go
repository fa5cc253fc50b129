package handler

import (
	"time"

	"github.com/comanda/ordering-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the confirmation envelope for deletes and logout.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type createUserRequest struct {
	Username    string  `json:"username"      validate:"required"`
	Password    string  `json:"password"      validate:"required"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// updateUserRequest is a partial update; absent fields stay untouched.
type updateUserRequest struct {
	Username    *string `json:"username"      validate:"omitempty,min=1"`
	Password    *string `json:"password"      validate:"omitempty,min=1"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// userResponse never carries the password hash; the JSON contract is owned
// here, not by the domain model.
type userResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DateOfBirth: u.DateOfBirth,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
