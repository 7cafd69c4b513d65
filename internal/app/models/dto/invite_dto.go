package dto

import "github.com/jazbaa/showcase/internal/app/models"

// CreateInviteRequest issues a registration invite
type CreateInviteRequest struct {
	Email     string `json:"email" binding:"required,email"`
	CollegeID string `json:"collegeId"`
}

// InviteResponse is an invite as shown to the admin or the invitee
type InviteResponse struct {
	Token       string              `json:"token"`
	Email       string              `json:"email"`
	CollegeID   string              `json:"collegeId,omitempty"`
	Status      models.InviteStatus `json:"status" example:"pending"`
	StartupSlug string              `json:"startupSlug,omitempty"`
	Link        string              `json:"link" example:"/register/3f1c..."`
}

// NewInviteResponse converts an invite model
func NewInviteResponse(inv *models.Invite) InviteResponse {
	return InviteResponse{
		Token:       inv.Token,
		Email:       inv.Email,
		CollegeID:   inv.CollegeID,
		Status:      inv.Status,
		StartupSlug: inv.StartupSlug,
		Link:        "/register/" + inv.Token,
	}
}

// TeamMemberRequest is one team member on the registration form
type TeamMemberRequest struct {
	Name       string `json:"name" binding:"required,notblank"`
	Role       string `json:"role" binding:"required,notblank"`
	Headshot   string `json:"headshot" binding:"omitempty,url"`
	LinkedIn   string `json:"linkedin" binding:"omitempty,url"`
	GitHub     string `json:"github" binding:"omitempty,url"`
	Portfolio  string `json:"portfolio" binding:"omitempty,url"`
	Hiring     bool   `json:"hiring"`
	PitchVideo string `json:"pitchVideo" binding:"omitempty,url"`
}

// IndividualPitchRequest is a per-member pitch video
type IndividualPitchRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Role     string `json:"role"`
	VideoURL string `json:"videoUrl" binding:"required,url"`
	Hiring   bool   `json:"hiring"`
}

// InviteRegistrationRequest is the startup registration form behind an invite
type InviteRegistrationRequest struct {
	Name                 string                   `json:"name" binding:"required,notblank,max=120"`
	Tagline              string                   `json:"tagline" binding:"required,notblank,max=200"`
	Story                string                   `json:"story" binding:"required,notblank"`
	StoryImage           string                   `json:"storyImage" binding:"omitempty,url"`
	Problem              string                   `json:"problem"`
	Solution             string                   `json:"solution"`
	Sector               string                   `json:"sector" binding:"required,notblank"`
	Badges               []string                 `json:"badges"`
	Features             []string                 `json:"features"`
	Logo                 string                   `json:"logo" binding:"omitempty,url"`
	ProductVideo         string                   `json:"productVideo" binding:"omitempty,url"`
	PitchDeck            string                   `json:"pitchDeck" binding:"omitempty,url"`
	Website              string                   `json:"website" binding:"omitempty,url"`
	AppStore             string                   `json:"appStore" binding:"omitempty,url"`
	PlayStore            string                   `json:"playStore" binding:"omitempty,url"`
	DemoURL              string                   `json:"demoUrl" binding:"omitempty,url"`
	QRCode               string                   `json:"qrCode" binding:"omitempty,url"`
	ContactEmail         string                   `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone         string                   `json:"contactPhone"`
	CollaborationMessage string                   `json:"collaborationMessage"`
	Team                 []TeamMemberRequest      `json:"team" binding:"required,min=1,dive"`
	IndividualPitches    []IndividualPitchRequest `json:"individualPitches" binding:"omitempty,dive"`
}

// Profile converts the form into the stored profile
func (r *InviteRegistrationRequest) Profile() *models.StartupProfile {
	p := &models.StartupProfile{
		Tagline:              r.Tagline,
		Story:                r.Story,
		StoryImage:           r.StoryImage,
		Problem:              r.Problem,
		Solution:             r.Solution,
		Features:             r.Features,
		Logo:                 r.Logo,
		ProductVideo:         r.ProductVideo,
		PitchDeck:            r.PitchDeck,
		Website:              r.Website,
		AppStore:             r.AppStore,
		PlayStore:            r.PlayStore,
		DemoURL:              r.DemoURL,
		QRCode:               r.QRCode,
		ContactEmail:         r.ContactEmail,
		ContactPhone:         r.ContactPhone,
		CollaborationMessage: r.CollaborationMessage,
	}
	for _, m := range r.Team {
		p.Team = append(p.Team, models.TeamMember{
			Name: m.Name, Role: m.Role, Headshot: m.Headshot, LinkedIn: m.LinkedIn,
			GitHub: m.GitHub, Portfolio: m.Portfolio, Hiring: m.Hiring, PitchVideo: m.PitchVideo,
		})
	}
	for _, ip := range r.IndividualPitches {
		p.IndividualPitches = append(p.IndividualPitches, models.IndividualPitch{
			Name: ip.Name, Role: ip.Role, VideoURL: ip.VideoURL, Hiring: ip.Hiring,
		})
	}
	return p
}

// InviteRegistrationResponse reports the created startup
type InviteRegistrationResponse struct {
	Invite  InviteResponse  `json:"invite"`
	Startup *models.Startup `json:"startup"`
}
