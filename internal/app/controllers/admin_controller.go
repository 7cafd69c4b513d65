package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/services"
	"github.com/jazbaa/showcase/internal/middleware"
	"github.com/jazbaa/showcase/internal/pkg/helpers"
	"github.com/rs/zerolog"
)

// AdminController serves the admin dashboard views.
type AdminController struct {
	admin    *services.AdminService
	comments services.CommentService
	logger   zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(admin *services.AdminService, comments services.CommentService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		admin:    admin,
		comments: comments,
		logger:   logger,
	}
}

// Interests lists the flattened interest events
// @Summary Interest events
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param type query string false "Restrict to one kind" Enums(investment, hiring)
// @Success 200 {object} dto.APIResponse{data=dto.InterestEventsResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown interest type"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /admin/interests [get]
func (c *AdminController) Interests(ctx *gin.Context) {
	events, err := c.admin.AllInterestEvents(ctx.Request.Context(), models.InterestKind(ctx.Query("type")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.InterestEventsResponse{Events: events}, ""))
}

// Comments lists every comment
// @Summary All comments
// @Description Oldest first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CommentListResponse}
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /admin/comments [get]
func (c *AdminController) Comments(ctx *gin.Context) {
	list, err := c.comments.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommentListResponse{Comments: list}, ""))
}

// Overview returns the roster counters
// @Summary Overview counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RosterStats}
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /admin/overview [get]
func (c *AdminController) Overview(ctx *gin.Context) {
	stats, err := c.admin.RosterStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// Users lists the user roster
// @Summary User roster
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter" Enums(admin, investor, college)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown role"
// @Router /admin/users [get]
func (c *AdminController) Users(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	resp, err := c.admin.Users(ctx.Request.Context(), models.Role(ctx.Query("role")), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}

// AddUser creates an account of any role
// @Summary Add a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/users [post]
func (c *AdminController) AddUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.admin.AddUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Str("uid", user.UID).Str("by", middleware.CurrentUser(ctx).UID).Msg("Admin added user")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewUserResponse(user), "User added"))
}

// IssueInvite creates a registration invite
// @Summary Issue a startup registration invite
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInviteRequest true "Invite"
// @Success 201 {object} dto.APIResponse{data=dto.InviteResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /admin/invites [post]
func (c *AdminController) IssueInvite(ctx *gin.Context) {
	var req dto.CreateInviteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	inv, err := c.admin.IssueInvite(ctx.Request.Context(), req.Email, req.CollegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewInviteResponse(inv), "Invite issued"))
}
