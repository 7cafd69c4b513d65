package dto

import "github.com/jazbaa/showcase/internal/app/models"

// LoadState tells the client whether an empty list means "nothing there" or
// "could not load".
type LoadState string

const (
	LoadStateOK     LoadState = "ok"
	LoadStateFailed LoadState = "failed"
)

// StartupListResponse is a catalog listing
type StartupListResponse struct {
	Startups  []*models.Startup `json:"startups"`
	LoadState LoadState         `json:"loadState" example:"ok" enums:"ok,failed"`
	Message   string            `json:"message,omitempty"`
}

// CreateStartupRequest is the admin "add startup" form
type CreateStartupRequest struct {
	Name      string   `json:"name" binding:"required,notblank,max=120" example:"MediCare AI"`
	Pitch     string   `json:"pitch" binding:"required,notblank,max=500" example:"AI-powered diagnosis for rural healthcare"`
	Sector    string   `json:"sector" binding:"required,notblank" example:"HealthTech"`
	Badges    []string `json:"badges"`
	Special   string   `json:"special"`
	CollegeID string   `json:"collegeId" binding:"required,notblank" example:"iit-delhi"`
}

// CatalogMetaResponse lists the vocabularies used by the forms and tabs
type CatalogMetaResponse struct {
	DashboardSectors    []string `json:"dashboardSectors"`
	RegistrationSectors []string `json:"registrationSectors"`
	Badges              []string `json:"badges"`
	InterestTypes       []string `json:"interestTypes"`
	CommentTypes        []string `json:"commentTypes"`
}

// ToggleInterestResponse is the startup after a toggle
type ToggleInterestResponse struct {
	Startup *models.Startup     `json:"startup"`
	Type    models.InterestKind `json:"type" example:"investment"`
	Active  bool                `json:"active"`
}
