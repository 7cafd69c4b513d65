package dto

import (
	"time"

	"github.com/jazbaa/showcase/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"investor@test.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RegisterRequest is the public self-registration form. Admin accounts cannot
// be created here.
type RegisterRequest struct {
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=8"`
	Role        models.Role `json:"role" binding:"required,oneof=investor college" example:"investor"`
	DisplayName string      `json:"displayName" binding:"omitempty,max=100"`
	CollegeID   string      `json:"collegeId" binding:"required_if=Role college"`
	InvestorID  string      `json:"investorId"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64     `json:"expiresIn" example:"86400"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// UserResponse represents basic user information
type UserResponse struct {
	UID         string      `json:"uid"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName,omitempty"`
	Role        models.Role `json:"role"`
	CollegeID   string      `json:"collegeId,omitempty"`
	InvestorID  string      `json:"investorId,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewUserResponse converts a user model
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CollegeID:   u.CollegeID,
		InvestorID:  u.InvestorID,
		CreatedAt:   u.CreatedAt,
	}
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token    TokenResponse `json:"token"`
	User     UserResponse  `json:"user"`
	Redirect string        `json:"redirect" example:"/investor-dashboard"`
}

// NavigationResponse is the routing decision for a client-side route
type NavigationResponse struct {
	Route    string `json:"route" example:"/investor-dashboard"`
	Decision string `json:"decision" example:"allow" enums:"allow,redirect,pending"`
	Target   string `json:"target,omitempty" example:"/login"`
}
