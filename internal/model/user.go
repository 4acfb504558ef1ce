package model

import "time"

// User represents a user account in the database.
type User struct {
	ID        int64
	FullName  string
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial profile update. Nil fields are
// left untouched. Changing the password requires the current password.
type UpdateProfileRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	NewPassword *string `json:"newPassword"`
}

// AuthResponse represents an authentication response with a JWT token and user info.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no credential fields).
type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
