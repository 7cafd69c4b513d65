package dto

import "github.com/jazbaa/showcase/internal/app/models"

// InvestorTotals are the counters on the investor dashboard
type InvestorTotals struct {
	InterestCount int `json:"interestCount"`
	HiringCount   int `json:"hiringCount"`
	Sectors       int `json:"sectors"`
	Startups      int `json:"startups"`
}

// InvestorDashboardResponse is the investor dashboard payload
type InvestorDashboardResponse struct {
	Startups  []*models.Startup `json:"startups"`
	Comments  []*models.Comment `json:"comments"`
	Totals    InvestorTotals    `json:"totals"`
	LoadState LoadState         `json:"loadState" enums:"ok,failed"`
	Message   string            `json:"message,omitempty"`
}

// CollegeTotals are computed over the whole college scope
type CollegeTotals struct {
	Startups        int `json:"startups"`
	InterestedCount int `json:"interestedCount"`
	HiringCount     int `json:"hiringCount"`
}

// CollegeDashboardResponse is the college dashboard payload for one sector tab
type CollegeDashboardResponse struct {
	CollegeID string            `json:"collegeId"`
	Sector    string            `json:"sector"`
	Sectors   []string          `json:"sectors"`
	Startups  []*models.Startup `json:"startups"`
	Totals    CollegeTotals     `json:"totals"`
	LoadState LoadState         `json:"loadState" enums:"ok,failed"`
	Message   string            `json:"message,omitempty"`
}
