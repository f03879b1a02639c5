package dto

import "time"

// RegisterRequest entrada para registro. Role admite client, freelancer o
// agency; admin no se autoregistra (se crea por seed).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=client freelancer agency"`
	Country  string `json:"country" validate:"required"`
	Company  string `json:"company" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Country   string    `json:"country"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse salida de registro/login: usuario + token JWT.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
