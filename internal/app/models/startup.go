package models

import (
	"strings"
	"time"
)

// Startup is a showcased startup. Its ID is the slug derived from its name.
type Startup struct {
	ID                  string          `json:"id" db:"id" firestore:"-"`
	Name                string          `json:"name" db:"name" firestore:"name"`
	Pitch               string          `json:"pitch" db:"pitch" firestore:"pitch"`
	Sector              string          `json:"sector" db:"sector" firestore:"sector"`
	Badges              []string        `json:"badges" db:"badges" firestore:"badges"`
	Special             string          `json:"special,omitempty" db:"special" firestore:"special,omitempty"`
	CollegeID           string          `json:"collegeId" db:"college_id" firestore:"collegeId"`
	CreatedBy           string          `json:"createdBy" db:"created_by" firestore:"createdBy"`
	CreatedAt           time.Time       `json:"createdAt" db:"created_at" firestore:"createdAt"`
	InterestedInvestors []string        `json:"interestedInvestors" db:"interested_investors" firestore:"interestedInvestors"`
	HiringInvestors     []string        `json:"hiringInvestors" db:"hiring_investors" firestore:"hiringInvestors"`
	Profile             *StartupProfile `json:"profile,omitempty" db:"profile" firestore:"profile,omitempty"`
}

// StartupProfile holds the long-form profile captured by the registration form.
type StartupProfile struct {
	Tagline              string            `json:"tagline,omitempty" firestore:"tagline,omitempty"`
	Story                string            `json:"story,omitempty" firestore:"story,omitempty"`
	StoryImage           string            `json:"storyImage,omitempty" firestore:"storyImage,omitempty"`
	Problem              string            `json:"problem,omitempty" firestore:"problem,omitempty"`
	Solution             string            `json:"solution,omitempty" firestore:"solution,omitempty"`
	Features             []string          `json:"features,omitempty" firestore:"features,omitempty"`
	Logo                 string            `json:"logo,omitempty" firestore:"logo,omitempty"`
	ProductVideo         string            `json:"productVideo,omitempty" firestore:"productVideo,omitempty"`
	PitchDeck            string            `json:"pitchDeck,omitempty" firestore:"pitchDeck,omitempty"`
	Website              string            `json:"website,omitempty" firestore:"website,omitempty"`
	AppStore             string            `json:"appStore,omitempty" firestore:"appStore,omitempty"`
	PlayStore            string            `json:"playStore,omitempty" firestore:"playStore,omitempty"`
	DemoURL              string            `json:"demoUrl,omitempty" firestore:"demoUrl,omitempty"`
	QRCode               string            `json:"qrCode,omitempty" firestore:"qrCode,omitempty"`
	ContactEmail         string            `json:"contactEmail,omitempty" firestore:"contactEmail,omitempty"`
	ContactPhone         string            `json:"contactPhone,omitempty" firestore:"contactPhone,omitempty"`
	CollaborationMessage string            `json:"collaborationMessage,omitempty" firestore:"collaborationMessage,omitempty"`
	Team                 []TeamMember      `json:"team,omitempty" firestore:"team,omitempty"`
	IndividualPitches    []IndividualPitch `json:"individualPitches,omitempty" firestore:"individualPitches,omitempty"`
}

// TeamMember is one founder or team member listed on a profile.
type TeamMember struct {
	Name       string `json:"name" firestore:"name"`
	Role       string `json:"role" firestore:"role"`
	Headshot   string `json:"headshot,omitempty" firestore:"headshot,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty" firestore:"github,omitempty"`
	Portfolio  string `json:"portfolio,omitempty" firestore:"portfolio,omitempty"`
	Hiring     bool   `json:"hiring" firestore:"hiring"`
	PitchVideo string `json:"pitchVideo,omitempty" firestore:"pitchVideo,omitempty"`
}

// IndividualPitch is a per-member pitch video.
type IndividualPitch struct {
	Name     string `json:"name" firestore:"name"`
	Role     string `json:"role" firestore:"role"`
	VideoURL string `json:"videoUrl" firestore:"videoUrl"`
	Hiring   bool   `json:"hiring" firestore:"hiring"`
}

// Members returns the membership set selected by kind.
func (s *Startup) Members(kind InterestKind) []string {
	if kind == InterestHiring {
		return s.HiringInvestors
	}
	return s.InterestedInvestors
}

// HasMember reports whether uid is in the set selected by kind.
func (s *Startup) HasMember(kind InterestKind, uid string) bool {
	for _, m := range s.Members(kind) {
		if m == uid {
			return true
		}
	}
	return false
}

// Normalize enforces set semantics on badges and membership lists and makes
// sure nil slices serialize as empty arrays.
func (s *Startup) Normalize() {
	s.Badges = NormalizeSet(s.Badges)
	s.InterestedInvestors = NormalizeSet(s.InterestedInvestors)
	s.HiringInvestors = NormalizeSet(s.HiringInvestors)
}

// CanonicalPitch picks the pitch for a startup from whichever source field is
// filled in: the explicit pitch, the profile tagline, or the first sentence of
// the story.
func CanonicalPitch(pitch string, profile *StartupProfile) string {
	if p := strings.TrimSpace(pitch); p != "" {
		return p
	}
	if profile == nil {
		return ""
	}
	if t := strings.TrimSpace(profile.Tagline); t != "" {
		return t
	}
	story := strings.TrimSpace(profile.Story)
	if i := strings.IndexAny(story, ".!?"); i >= 0 {
		return strings.TrimSpace(story[:i+1])
	}
	return story
}

// InterestEvent is a flattened (investor, startup, kind) membership, derived on
// read for the admin views and never stored.
type InterestEvent struct {
	InvestorID    string       `json:"investorId"`
	InvestorEmail string       `json:"investorEmail"`
	StartupID     string       `json:"startupId"`
	StartupName   string       `json:"startupName"`
	Sector        string       `json:"sector"`
	Type          InterestKind `json:"type"`
}
