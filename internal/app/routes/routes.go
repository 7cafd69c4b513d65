package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jazbaa/showcase/internal/app/controllers"
	"github.com/jazbaa/showcase/internal/app/models"
	"github.com/jazbaa/showcase/internal/middleware"
)

// Controllers groups every HTTP controller the router needs.
type Controllers struct {
	Auth       *controllers.AuthController
	Navigation *controllers.NavigationController
	Startups   *controllers.StartupController
	Dashboards *controllers.DashboardController
	Admin      *controllers.AdminController
	Invites    *controllers.InviteController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.IPRateLimiter,
) {
	router.GET("/health", ctrl.Health.Health)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", ctrl.Health.Health)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), ctrl.Auth.Login)
		auth.POST("/register", loginLimiter.Middleware(), ctrl.Auth.Register)
		auth.POST("/logout", authMiddleware.Identify(), ctrl.Auth.Logout)
		auth.GET("/me", authMiddleware.JWTAuth(), ctrl.Auth.Me)
	}

	v1.GET("/navigation", authMiddleware.Identify(), ctrl.Navigation.Navigate)

	// --- Public catalog ---
	startups := v1.Group("/startups")
	{
		startups.GET("", ctrl.Startups.List)
		startups.GET("/:slug", ctrl.Startups.Get)
		startups.GET("/:slug/comments", ctrl.Startups.Comments)
	}
	v1.GET("/meta/catalog", ctrl.Startups.Meta)

	// --- Invite registration (the token is the credential) ---
	invites := v1.Group("/invites")
	{
		invites.GET("/:token", ctrl.Invites.Lookup)
		invites.POST("/:token/register", ctrl.Invites.Register)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/dashboard", ctrl.Dashboards.Mine)

	investor := authenticated.Group("/investor")
	investor.Use(authMiddleware.RoleRequired(models.RoleInvestor))
	{
		investor.GET("/dashboard", ctrl.Dashboards.Investor)
		investor.POST("/startups/:slug/interests/:kind", ctrl.Dashboards.ToggleInterest)
		investor.POST("/startups/:slug/comments", ctrl.Dashboards.AddComment)
	}

	college := authenticated.Group("/college")
	college.Use(authMiddleware.RoleRequired(models.RoleCollege))
	{
		college.GET("/dashboard", ctrl.Dashboards.College)
	}

	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/interests", ctrl.Admin.Interests)
		admin.GET("/comments", ctrl.Admin.Comments)
		admin.GET("/overview", ctrl.Admin.Overview)
		admin.GET("/users", ctrl.Admin.Users)
		admin.POST("/users", ctrl.Admin.AddUser)
		admin.POST("/startups", ctrl.Startups.Create)
		admin.POST("/invites", ctrl.Admin.IssueInvite)
	}
}
