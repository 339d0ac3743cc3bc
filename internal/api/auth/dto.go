package auth

import "time"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=250"`
	Email    string `json:"email" validate:"required,email,max=250"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	User UserResponse `json:"user"`
}
