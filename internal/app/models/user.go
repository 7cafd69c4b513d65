package models

import (
	"time"
)

// User is an entry of the role directory ('users' collection).
type User struct {
	UID         string `json:"uid" db:"uid" firestore:"uid"`
	Email       string `json:"email" db:"email" firestore:"email"` // stored lowercased
	DisplayName string `json:"displayName,omitempty" db:"display_name" firestore:"displayName,omitempty"`
	// PasswordHash is a bcrypt hash and never leaves the service
	PasswordHash string    `json:"-" db:"password_hash" firestore:"passwordHash"`
	Role         Role      `json:"role" db:"role" firestore:"role"`
	CollegeID    string    `json:"collegeId,omitempty" db:"college_id" firestore:"collegeId,omitempty"`
	InvestorID   string    `json:"investorId,omitempty" db:"investor_id" firestore:"investorId,omitempty"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" firestore:"createdAt"`
}

// AttributionName is the name recorded on comments written by the user.
func (u *User) AttributionName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}
