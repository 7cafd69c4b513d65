package models

import "time"

// Comment is an append-only investor note on a startup.
type Comment struct {
	ID           string      `json:"id" db:"id" firestore:"-"`
	InvestorID   string      `json:"investorId" db:"investor_id" firestore:"investorId"`
	InvestorName string      `json:"investorName" db:"investor_name" firestore:"investorName"`
	StartupID    string      `json:"startupId" db:"startup_id" firestore:"startupId"`
	Text         string      `json:"comment" db:"comment" firestore:"comment"`
	Timestamp    time.Time   `json:"timestamp" db:"created_at" firestore:"timestamp"`
	Type         CommentKind `json:"type" db:"type" firestore:"type"`
}
