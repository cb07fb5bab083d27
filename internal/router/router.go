package router

import (
	"database/sql"
	"time"

	"studio_ops_backend/internal/handlers"
	"studio_ops_backend/internal/middleware"
	"studio_ops_backend/internal/repositories"
	"studio_ops_backend/internal/services"
	"studio_ops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	talentRepo := repositories.NewTalentRepository(db)
	crewRepo := repositories.NewCrewRepository(db)
	firmRepo := repositories.NewFirmRepository(db)
	shootRepo := repositories.NewShootRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)

	// Initialize Services
	jwtSecret := utils.Getenv("JWT_SECRET", utils.DefaultJWTSecret)
	jwtExpiration := time.Hour * 72

	authService := services.NewAuthService(authRepo, db, jwtSecret, jwtExpiration)
	talentService := services.NewTalentService(talentRepo, db)
	crewService := services.NewCrewService(crewRepo, db)
	firmService := services.NewFirmService(firmRepo, db)
	shootService := services.NewShootService(shootRepo, talentRepo, crewRepo, db)
	financeService := services.NewFinanceService(documentRepo, shootRepo, talentRepo, crewRepo, firmRepo, db)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	talentHandler := handlers.NewTalentHandler(talentService)
	crewHandler := handlers.NewCrewHandler(crewService)
	firmHandler := handlers.NewFirmHandler(firmService)
	shootHandler := handlers.NewShootHandler(shootService)
	financeHandler := handlers.NewFinanceHandler(financeService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupUserRoutes(authenticated, authHandler)
		SetupTalentRoutes(authenticated, talentHandler)
		SetupCrewRoutes(authenticated, crewHandler)
		SetupFirmRoutes(authenticated, firmHandler)
		SetupShootRoutes(authenticated, shootHandler)
		SetupDocumentRoutes(authenticated, financeHandler)
		SetupDashboardRoutes(authenticated)
	}
}
