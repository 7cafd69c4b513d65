package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/services"
	"github.com/jazbaa/showcase/internal/middleware"
	"github.com/rs/zerolog"
)

// StartupController serves the public catalog and the admin "add startup" form.
type StartupController struct {
	catalog  services.CatalogService
	comments services.CommentService
	logger   zerolog.Logger
}

// NewStartupController creates a new StartupController
func NewStartupController(catalog services.CatalogService, comments services.CommentService, logger zerolog.Logger) *StartupController {
	return &StartupController{
		catalog:  catalog,
		comments: comments,
		logger:   logger,
	}
}

// List returns the catalog
// @Summary List startups
// @Description Newest first. sector=all (or empty) disables the sector filter. A store outage answers 200 with loadState=failed and an empty list.
// @Tags startups
// @Produce json
// @Param sector query string false "Sector filter" example(HealthTech)
// @Param collegeId query string false "College filter" example(iit-delhi)
// @Success 200 {object} dto.APIResponse{data=dto.StartupListResponse}
// @Router /startups [get]
func (c *StartupController) List(ctx *gin.Context) {
	resp := c.catalog.List(ctx.Request.Context(), services.CatalogScope{
		CollegeID: ctx.Query("collegeId"),
		Sector:    ctx.Query("sector"),
	})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, resp.Message))
}

// Get returns a startup profile
// @Summary Get a startup by slug
// @Tags startups
// @Produce json
// @Param slug path string true "Startup slug" example(payeasy)
// @Success 200 {object} dto.APIResponse{data=models.Startup}
// @Failure 404 {object} dto.ErrorResponse "Startup not found"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /startups/{slug} [get]
func (c *StartupController) Get(ctx *gin.Context) {
	st, err := c.catalog.Get(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(st, ""))
}

// Comments lists a startup's comments
// @Summary List comments of a startup
// @Description Oldest first.
// @Tags startups
// @Produce json
// @Param slug path string true "Startup slug"
// @Success 200 {object} dto.APIResponse{data=dto.CommentListResponse}
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /startups/{slug}/comments [get]
func (c *StartupController) Comments(ctx *gin.Context) {
	list, err := c.comments.ListFor(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommentListResponse{Comments: list}, ""))
}

// Meta returns the catalog vocabularies
// @Summary Catalog metadata
// @Description Sector tabs, registration sectors, badges and the interest/comment types.
// @Tags startups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CatalogMetaResponse}
// @Router /meta/catalog [get]
func (c *StartupController) Meta(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalog.Meta(), ""))
}

// Create adds a startup
// @Summary Add a startup (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStartupRequest true "Startup"
// @Success 201 {object} dto.APIResponse{data=models.Startup}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "A startup with this name already exists"
// @Router /admin/startups [post]
func (c *StartupController) Create(ctx *gin.Context) {
	var req dto.CreateStartupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	st, err := c.catalog.Create(ctx.Request.Context(), services.StartupInput{
		Name:      req.Name,
		Pitch:     req.Pitch,
		Sector:    req.Sector,
		Badges:    req.Badges,
		Special:   req.Special,
		CollegeID: req.CollegeID,
		CreatedBy: middleware.CurrentUser(ctx).UID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(st, "Startup added"))
}
