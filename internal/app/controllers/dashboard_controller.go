package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appAuth "github.com/jazbaa/showcase/internal/app/auth"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/app/models/dto"
	"github.com/jazbaa/showcase/internal/app/services"
	"github.com/jazbaa/showcase/internal/middleware"
	"github.com/jazbaa/showcase/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// DashboardController serves the investor and college dashboards and the
// investor actions taken on them.
type DashboardController struct {
	dashboards *services.DashboardService
	ledger     *services.InterestLedger
	comments   services.CommentService
	admin      *services.AdminService
	logger     zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(
	dashboards *services.DashboardService,
	ledger *services.InterestLedger,
	comments services.CommentService,
	admin *services.AdminService,
	logger zerolog.Logger,
) *DashboardController {
	return &DashboardController{
		dashboards: dashboards,
		ledger:     ledger,
		comments:   comments,
		admin:      admin,
		logger:     logger,
	}
}

// AdminDashboardResponse is the admin overview with its interest events.
type AdminDashboardResponse struct {
	Stats  *dto.RosterStats       `json:"stats"`
	Events []models.InterestEvent `json:"events"`
}

// Mine dispatches to the caller's own dashboard
// @Summary Dashboard of the current user
// @Description Picks the investor, college or admin dashboard from the caller's role.
// @Tags dashboards
// @Produce json
// @Security BearerAuth
// @Param sector query string false "College sector tab" default(HealthTech)
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "No dashboard for this role"
// @Router /dashboard [get]
func (c *DashboardController) Mine(ctx *gin.Context) {
	board, err := appAuth.DashboardFor(middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("no dashboard for this role"))
		return
	}

	switch d := board.(type) {
	case appAuth.InvestorDashboard:
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.dashboards.Investor(ctx.Request.Context(), d), ""))
	case appAuth.CollegeDashboard:
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.dashboards.College(ctx.Request.Context(), d, ctx.Query("sector")), ""))
	case appAuth.AdminDashboard:
		c.adminDashboard(ctx)
	}
}

func (c *DashboardController) adminDashboard(ctx *gin.Context) {
	stats, err := c.admin.RosterStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	events, err := c.admin.AllInterestEvents(ctx.Request.Context(), "")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(AdminDashboardResponse{Stats: stats, Events: events}, ""))
}

// Investor returns the investor dashboard
// @Summary Investor dashboard
// @Description Every startup, every comment and the totals. A store outage answers 200 with loadState=failed.
// @Tags investor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InvestorDashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /investor/dashboard [get]
func (c *DashboardController) Investor(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	resp := c.dashboards.Investor(ctx.Request.Context(), appAuth.InvestorDashboard{InvestorUID: user.UID})
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, resp.Message))
}

// ToggleInterest flips the caller's membership
// @Summary Toggle investment or hiring interest
// @Description Adds the investor to the set when absent, removes when present, and returns the re-read startup.
// @Tags investor
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Startup slug"
// @Param kind path string true "investment or hiring" Enums(investment, hiring)
// @Success 200 {object} dto.APIResponse{data=dto.ToggleInterestResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown interest type"
// @Failure 404 {object} dto.ErrorResponse "Startup not found"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /investor/startups/{slug}/interests/{kind} [post]
func (c *DashboardController) ToggleInterest(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	res, err := c.ledger.Toggle(ctx.Request.Context(), ctx.Param("slug"), user.UID, models.InterestKind(ctx.Param("kind")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToggleInterestResponse{
		Startup: res.Startup,
		Type:    res.Kind,
		Active:  res.Active,
	}, ""))
}

// AddComment appends an investor comment
// @Summary Comment on a startup
// @Tags investor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Startup slug"
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 400 {object} dto.ErrorResponse "Empty comment"
// @Failure 404 {object} dto.ErrorResponse "Startup not found"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /investor/startups/{slug}/comments [post]
func (c *DashboardController) AddComment(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	comment, err := c.comments.Append(ctx.Request.Context(), services.CommentInput{
		StartupID: ctx.Param("slug"),
		Investor:  middleware.CurrentUser(ctx),
		Text:      req.Comment,
		Kind:      req.Type,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment, "Comment added"))
}

// College returns the college dashboard
// @Summary College dashboard
// @Description Startups of the caller's own college for one sector tab, with totals over every startup of the college.
// @Tags college
// @Produce json
// @Security BearerAuth
// @Param sector query string false "Sector tab" default(HealthTech)
// @Success 200 {object} dto.APIResponse{data=dto.CollegeDashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /college/dashboard [get]
func (c *DashboardController) College(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user.CollegeID == "" {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("account is not linked to a college"))
		return
	}
	resp := c.dashboards.College(ctx.Request.Context(), appAuth.CollegeDashboard{CollegeID: user.CollegeID}, ctx.Query("sector"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, resp.Message))
}
