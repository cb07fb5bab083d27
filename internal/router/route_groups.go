package router

import (
	"studio_ops_backend/internal/handlers"
	"studio_ops_backend/internal/middleware"
	"studio_ops_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterUser)
		authRoutes.POST("/login", authHandler.LoginUser)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("/logout", authHandler.LogoutUser)
			authRequiredRoutes.GET("/me", authHandler.GetCurrentUser)
		}
	}
}

// SetupUserRoutes sets up the admin-only user management routes.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		userRoutes.GET("", authHandler.ListUsers)
		userRoutes.POST("", authHandler.RegisterUser)
		userRoutes.DELETE("/:id", authHandler.DeleteUser)
	}
}

// SetupTalentRoutes sets up the talent roster routes.
func SetupTalentRoutes(authenticatedGroup *gin.RouterGroup, talentHandler *handlers.TalentHandler) {
	talentRoutes := authenticatedGroup.Group("/talent")
	talentRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser))
	{
		talentRoutes.POST("", talentHandler.CreateTalent)
		talentRoutes.GET("", talentHandler.GetTalent)
		talentRoutes.GET("/:id", talentHandler.GetTalentByID)
		talentRoutes.PUT("/:id", talentHandler.UpdateTalent)
		talentRoutes.DELETE("/:id", talentHandler.DeleteTalent)
	}
}

// SetupCrewRoutes sets up the crew roster routes.
func SetupCrewRoutes(authenticatedGroup *gin.RouterGroup, crewHandler *handlers.CrewHandler) {
	crewRoutes := authenticatedGroup.Group("/crew")
	crewRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser))
	{
		crewRoutes.POST("", crewHandler.CreateCrewMember)
		crewRoutes.GET("", crewHandler.GetCrewMembers)
		crewRoutes.GET("/:id", crewHandler.GetCrewMemberByID)
		crewRoutes.PUT("/:id", crewHandler.UpdateCrewMember)
		crewRoutes.DELETE("/:id", crewHandler.DeleteCrewMember)
	}
}

// SetupFirmRoutes sets up the billing firm routes.
// Firm management is admin only; reads are open to all users.
func SetupFirmRoutes(authenticatedGroup *gin.RouterGroup, firmHandler *handlers.FirmHandler) {
	firmWriteRoutes := authenticatedGroup.Group("/firms")
	firmWriteRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		firmWriteRoutes.POST("", firmHandler.CreateFirm)
		firmWriteRoutes.PUT("/:id", firmHandler.UpdateFirm)
		firmWriteRoutes.DELETE("/:id", firmHandler.DeleteFirm)
	}

	authenticatedGroup.GET("/firms", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser), firmHandler.GetFirms)
	authenticatedGroup.GET("/firms/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser), firmHandler.GetFirmByID)

	// Brand-page mapping lives on its own path so it does not collide
	// with the /firms/:id wildcard.
	authenticatedGroup.GET("/firm-pages", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser), firmHandler.GetPageMappings)
	authenticatedGroup.POST("/firm-pages", middleware.RoleAuthMiddleware(models.RoleAdmin), firmHandler.SetPageMapping)
}

// SetupShootRoutes sets up the shoot routes, including the ledger sync.
func SetupShootRoutes(authenticatedGroup *gin.RouterGroup, shootHandler *handlers.ShootHandler) {
	shootRoutes := authenticatedGroup.Group("/shoots")
	shootRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser))
	{
		shootRoutes.POST("", shootHandler.CreateShoot)
		shootRoutes.GET("", shootHandler.GetShoots)
		shootRoutes.GET("/:id", shootHandler.GetShootByID)
		shootRoutes.PUT("/:id", shootHandler.UpdateShoot)
		shootRoutes.PATCH("/:id/status", shootHandler.UpdateShootStatus)
		shootRoutes.POST("/:id/sync", shootHandler.SyncFinancials)
		shootRoutes.DELETE("/:id", shootHandler.DeleteShoot)
	}
}

// SetupDocumentRoutes sets up the document composer and registry routes.
func SetupDocumentRoutes(authenticatedGroup *gin.RouterGroup, financeHandler *handlers.FinanceHandler) {
	documentRoutes := authenticatedGroup.Group("/documents")
	documentRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser))
	{
		documentRoutes.POST("/draft", financeHandler.ComposeDraft)
		documentRoutes.POST("", financeHandler.RecordDocument)
		documentRoutes.GET("", financeHandler.GetDocuments)
		documentRoutes.GET("/:id", financeHandler.GetDocumentByID)
	}
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	dashboardRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleUser))
	{
		dashboardRoutes.GET("/summary", handlers.GetDashboardSummary)
		dashboardRoutes.GET("/firm-billing", handlers.GetFirmBillingSummary)
	}
}
