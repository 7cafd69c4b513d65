package dto

import "github.com/jazbaa/showcase/internal/app/models"

// CreateUserRequest is the admin "add user" form; any role is allowed
type CreateUserRequest struct {
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=8"`
	Role        models.Role `json:"role" binding:"required,oneof=admin investor college"`
	DisplayName string      `json:"displayName" binding:"omitempty,max=100"`
	CollegeID   string      `json:"collegeId" binding:"required_if=Role college"`
	InvestorID  string      `json:"investorId"`
}

// UserListResponse is a page of the user roster
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}

// InterestEventsResponse lists flattened interest events
type InterestEventsResponse struct {
	Events []models.InterestEvent `json:"events"`
}

// RosterStats are the admin overview counters
type RosterStats struct {
	TotalStartups       int `json:"totalStartups" example:"7"`
	TotalInvestors      int `json:"totalInvestors" example:"2"`
	TotalColleges       int `json:"totalColleges" example:"2"`
	TotalInterestEvents int `json:"totalInterestEvents" example:"3"`
}
