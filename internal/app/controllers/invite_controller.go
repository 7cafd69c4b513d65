package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/services"
	"github.com/jazbaa/showcase/internal/middleware"
)

// InviteController serves the invite-only registration form.
type InviteController struct {
	invites *services.InviteService
}

// NewInviteController creates a new InviteController
func NewInviteController(invites *services.InviteService) *InviteController {
	return &InviteController{invites: invites}
}

// Lookup returns a pending invite
// @Summary Look up an invite
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} dto.APIResponse{data=dto.InviteResponse}
// @Failure 404 {object} dto.ErrorResponse "Invite not found"
// @Failure 410 {object} dto.ErrorResponse "Invite already used"
// @Router /invites/{token} [get]
func (c *InviteController) Lookup(ctx *gin.Context) {
	inv, err := c.invites.Lookup(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInviteResponse(inv), ""))
}

// Register consumes an invite
// @Summary Register a startup with an invite
// @Description Creates the startup and marks the invite registered in one transaction.
// @Tags invites
// @Accept json
// @Produce json
// @Param token path string true "Invite token"
// @Param request body dto.InviteRegistrationRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=dto.InviteRegistrationResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Invite not found"
// @Failure 409 {object} dto.ErrorResponse "A startup with this name already exists"
// @Failure 410 {object} dto.ErrorResponse "Invite already used"
// @Router /invites/{token}/register [post]
func (c *InviteController) Register(ctx *gin.Context) {
	var req dto.InviteRegistrationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	inv, st, err := c.invites.Register(ctx.Request.Context(), ctx.Param("token"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.InviteRegistrationResponse{
		Invite:  dto.NewInviteResponse(inv),
		Startup: st,
	}, "Startup registered"))
}
