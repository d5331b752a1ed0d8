package routes

import (
	"github.com/teamEPYC/leave-management-app-sub000/internal/api/handlers"
	"github.com/teamEPYC/leave-management-app-sub000/internal/api/middleware"
	"github.com/teamEPYC/leave-management-app-sub000/internal/auth"
	"github.com/teamEPYC/leave-management-app-sub000/internal/cache"
	"github.com/teamEPYC/leave-management-app-sub000/internal/config"
	"github.com/teamEPYC/leave-management-app-sub000/internal/logger"
	"github.com/teamEPYC/leave-management-app-sub000/internal/repository"
	"github.com/teamEPYC/leave-management-app-sub000/internal/service"

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

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	leaveTypeRepo := repository.NewLeaveTypeRepository(db)
	leaveBalanceRepo := repository.NewLeaveBalanceRepository(db)

	// Role resolutions are served from a bounded TTL cache; resolution
	// still works without one if it cannot be built
	roleCache, err := cache.NewTTLCache[service.RoleInfo](cfg.RoleCacheMaxEntries, cfg.RoleCacheTTL())
	if err != nil {
		logger.New().WithError(err).Warn("Role cache unavailable, resolving roles uncached")
		roleCache = nil
	}

	// Initialize services
	roleService := service.NewRoleService(membershipRepo, roleRepo, roleCache)
	userService := service.NewUserService(userRepo, validator)
	organizationService := service.NewOrganizationService(organizationRepo, userRepo, roleService, validator)
	invitationService := service.NewInvitationService(invitationRepo, membershipRepo, organizationRepo, roleRepo, userRepo, roleService, cfg.InvitationTTL(), validator)
	groupService := service.NewGroupService(groupRepo, organizationRepo, membershipRepo, roleService, validator)
	leaveTypeService := service.NewLeaveTypeService(leaveTypeRepo, organizationRepo, groupRepo, roleService, validator)
	entitlementService := service.NewEntitlementService(leaveBalanceRepo, leaveTypeRepo, membershipRepo, groupRepo, roleService)

	// Initialize auth service and middleware
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, roleService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	groupHandler := handlers.NewGroupHandler(groupService)
	leaveTypeHandler := handlers.NewLeaveTypeHandler(leaveTypeService)
	leaveBalanceHandler := handlers.NewLeaveBalanceHandler(entitlementService, roleService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Signup is the only unauthenticated API endpoint
	router.POST("/api/v1/users", userHandler.CreateUser)

	// API v1 routes - all remaining endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetCurrentUser)
			users.GET("/:id", userHandler.GetUser)
		}

		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.DELETE("/:id", organizationHandler.DeactivateOrganization)
			organizations.GET("/:id/role", organizationHandler.GetMyRole)
			organizations.POST("/:id/invitations", invitationHandler.Invite)
			organizations.POST("/:id/join", invitationHandler.Join)
			organizations.GET("/:id/groups", groupHandler.ListGroups)
			organizations.GET("/:id/leave-types", leaveTypeHandler.ListLeaveTypes)
			organizations.POST("/:id/entitlements/calculate", leaveBalanceHandler.Calculate)
		}

		// Group routes
		groups := v1.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.EditGroup)
			groups.DELETE("/:id", groupHandler.DeactivateGroup)
		}

		// Leave type routes
		leaveTypes := v1.Group("/leave-types")
		{
			leaveTypes.POST("", leaveTypeHandler.CreateLeaveType)
			leaveTypes.GET("/:id", leaveTypeHandler.GetLeaveType)
			leaveTypes.PUT("/:id", leaveTypeHandler.UpdateLeaveType)
			leaveTypes.DELETE("/:id", leaveTypeHandler.DeactivateLeaveType)
		}

		// Leave balance routes
		leaveBalances := v1.Group("/leave-balances")
		{
			leaveBalances.POST("/:id/adjustments", leaveBalanceHandler.AddAdjustment)
		}
	}

	return router
}
