package handler

import "github.com/userportal/account-system/internal/core/domain"

// registerRequest is the registration form. Shape validation happens here,
// before the domain service runs; the service only enforces uniqueness.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileUpdateRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type authResponse struct {
	Token string          `json:"token,omitempty"`
	User  *domain.Summary `json:"user,omitempty"`
}

type userListResponse struct {
	Users []*domain.Summary `json:"users"`
}

type dashboardResponse struct {
	Users     []*domain.Summary `json:"users"`
	UserCount int               `json:"user_count"`
}
