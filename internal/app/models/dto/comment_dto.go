package dto

import "github.com/jazbaa/showcase/internal/app/models"

// CreateCommentRequest is an investor note on a startup
type CreateCommentRequest struct {
	Comment string             `json:"comment" binding:"required,notblank,max=2000" example:"Interested in your backend dev"`
	Type    models.CommentKind `json:"type" binding:"required,oneof=investment hiring general" example:"hiring"`
}

// CommentListResponse is a list of comments, oldest first
type CommentListResponse struct {
	Comments []*models.Comment `json:"comments"`
}
