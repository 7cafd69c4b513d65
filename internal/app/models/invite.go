package models

import "time"

// Invite is a single-use registration credential handed to a startup team.
type Invite struct {
	ID          string       `json:"id" db:"id" firestore:"id"`
	Token       string       `json:"token" db:"token" firestore:"token"`
	Email       string       `json:"email" db:"email" firestore:"email"`
	CollegeID   string       `json:"collegeId,omitempty" db:"college_id" firestore:"collegeId,omitempty"`
	Status      InviteStatus `json:"status" db:"status" firestore:"status"`
	StartupSlug string       `json:"startupSlug,omitempty" db:"startup_slug" firestore:"startupSlug,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at" firestore:"createdAt"`
}
