package dto

import "github.com/callshield/callshield-backend/internal/models"

// LoginRequest carries the username only; demo mode verifies no
// credential.
type LoginRequest struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}
