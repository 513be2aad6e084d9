package auth

import (
	"github.com/carewell-health/carewell-backend/internal/users"
)

// RegisterDTO is the signup payload. Role defaults to patient when omitted.
type RegisterDTO struct {
	Name       string  `json:"name" validate:"required,min=2,max=120"`
	Age        int     `json:"age" validate:"required,gte=1,lte=130"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone" validate:"required,min=7,max=20"`
	Address    *string `json:"address" validate:"omitempty,max=500"`
	AadharCard string  `json:"aadharCard" validate:"required,len=12,numeric"`
	PhotoURL   *string `json:"photoUrl" validate:"omitempty,url"`
	Role       string  `json:"role" validate:"omitempty,oneof=patient provider"`
	Password   string  `json:"password" validate:"required,min=8,max=128"`
	Consent    bool    `json:"consent"`
}

// LoginDTO is the credential payload.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionDTO is returned by register and login: the sanitized user plus the
// signed token that was also set as a cookie.
type SessionDTO struct {
	User  *users.UserDTO `json:"user"`
	Token string         `json:"token"`
}
