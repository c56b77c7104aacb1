package routes

import (
	"time"

	"fieldsafe-backend/internal/api/handlers"
	"fieldsafe-backend/internal/api/middleware"
	"fieldsafe-backend/internal/auth"
	"fieldsafe-backend/internal/config"
	"fieldsafe-backend/internal/ratelimit"
	"fieldsafe-backend/internal/repository"
	"fieldsafe-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// One limiter shared by every list endpoint: the ceiling is per caller
	// identity, not per resource.
	listLimiter := ratelimit.New(cfg.ListRateLimit, time.Duration(cfg.ListRateWindowSec)*time.Second)

	// Initialize repositories
	branchRepo := repository.NewBranchRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	trainingRecordRepo := repository.NewTrainingRecordRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	inspectionRepo := repository.NewVehicleInspectionRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	permitRepo := repository.NewPermitRepository(db)

	// Initialize services
	branchService := service.NewBranchService(branchRepo, validator)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, trainingRecordRepo, listLimiter, validator)
	contractorService := service.NewContractorService(contractorRepo, listLimiter, validator)
	vehicleService := service.NewVehicleService(vehicleRepo, inspectionRepo, listLimiter, validator)
	equipmentService := service.NewEquipmentService(equipmentRepo, listLimiter, validator)
	permitService := service.NewPermitService(permitRepo, listLimiter, validator)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, 0)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	branchHandler := handlers.NewBranchHandler(branchService)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberService)
	contractorHandler := handlers.NewContractorHandler(contractorService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	permitHandler := handlers.NewPermitHandler(permitService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - every data endpoint requires an authenticated caller
	// with a resolved branch
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Branch administration, cross-branch callers only
		branches := v1.Group("/branches")
		branches.Use(authMiddleware.RequireCrossTenant())
		{
			branches.GET("", branchHandler.ListBranches)
			branches.POST("", branchHandler.CreateBranch)
			branches.GET("/:id", branchHandler.GetBranch)
			branches.PUT("/:id", branchHandler.UpdateBranch)
			branches.DELETE("/:id", branchHandler.DeleteBranch)
		}

		// Team member routes
		teamMembers := v1.Group("/team-members")
		{
			teamMembers.GET("", teamMemberHandler.ListTeamMembers)
			teamMembers.POST("", teamMemberHandler.CreateTeamMember)
			teamMembers.GET("/:id", teamMemberHandler.GetTeamMember)
			teamMembers.PUT("/:id", teamMemberHandler.UpdateTeamMember)
			teamMembers.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
			teamMembers.GET("/:id/training-records", teamMemberHandler.ListTrainingRecords)
			teamMembers.POST("/:id/training-records", teamMemberHandler.CreateTrainingRecord)
		}

		// Contractor routes
		contractors := v1.Group("/contractors")
		{
			contractors.GET("", contractorHandler.ListContractors)
			contractors.POST("", contractorHandler.CreateContractor)
			contractors.GET("/:id", contractorHandler.GetContractor)
			contractors.PUT("/:id", contractorHandler.UpdateContractor)
			contractors.DELETE("/:id", contractorHandler.DeleteContractor)
		}

		// Vehicle routes
		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.ListVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
			vehicles.GET("/:id/inspections", vehicleHandler.ListInspections)
			vehicles.POST("/:id/inspections", vehicleHandler.CreateInspection)
		}

		// Equipment routes
		equipment := v1.Group("/equipment")
		{
			equipment.GET("", equipmentHandler.ListEquipment)
			equipment.POST("", equipmentHandler.CreateEquipment)
			equipment.GET("/:id", equipmentHandler.GetEquipment)
			equipment.PUT("/:id", equipmentHandler.UpdateEquipment)
			equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
		}

		// Permit routes
		permits := v1.Group("/permits")
		{
			permits.GET("", permitHandler.ListPermits)
			permits.POST("", permitHandler.CreatePermit)
			permits.GET("/:id", permitHandler.GetPermit)
			permits.PUT("/:id", permitHandler.UpdatePermit)
			permits.DELETE("/:id", permitHandler.DeletePermit)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
