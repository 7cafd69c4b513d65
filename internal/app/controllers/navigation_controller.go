package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appAuth "github.com/jazbaa/showcase/internal/app/auth"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/middleware"
)

// NavigationController exposes the access guard to the client router.
type NavigationController struct{}

// NewNavigationController creates a new NavigationController
func NewNavigationController() *NavigationController {
	return &NavigationController{}
}

// Navigate decides what the client should do for a route
// @Summary Route decision
// @Description Combines the route table, the role guard and the landing redirect for the caller's identity.
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Param route query string true "Client route, e.g. /investor-dashboard"
// @Success 200 {object} dto.APIResponse{data=dto.NavigationResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing route"
// @Router /navigation [get]
func (c *NavigationController) Navigate(ctx *gin.Context) {
	route := ctx.Query("route")
	if route == "" {
		middleware.HandleAPIError(ctx, badRequest("route query parameter is required"))
		return
	}

	d := appAuth.Navigate(appAuth.Resolved(middleware.CurrentUser(ctx)), route)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NavigationResponse{
		Route:    route,
		Decision: string(d.Outcome),
		Target:   d.Target,
	}, ""))
}
