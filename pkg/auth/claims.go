package auth

import (
	"github.com/carewell-health/carewell-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Role   enums.Role
}

// AccessTokenClaims represents the typed JWT issued to clients. Claims stay
// minimal: the user id and role are re-checked against the store on every
// authenticated request.
type AccessTokenClaims struct {
	UserID uuid.UUID  `json:"userId"`
	Role   enums.Role `json:"role"`
	jwt.RegisteredClaims
}
