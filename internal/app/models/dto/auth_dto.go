package dto

import "github.com/yigit/studenthub/internal/app/models"

// RegisterRequest represents user registration data.
// Role may be "admin"; anything else registers a regular user.
type RegisterRequest struct {
	Username string `json:"username" example:"teacher"`
	Password string `json:"password" example:"teacher123"`
	Role     string `json:"role" example:"admin"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" example:"teacher"`
	Password string `json:"password" example:"teacher123"`
}

// LoginResponse carries the issued token and the public user projection
type LoginResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}
