package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/exalt/teamboard/internal/api/handler"
	"github.com/exalt/teamboard/internal/api/middleware"
	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
	"github.com/exalt/teamboard/internal/core/service"
)

// Deps carries everything the router needs that is built in main:
// repositories, token service, and the optional redis-backed collaborators.
type Deps struct {
	Users    ports.UserRepository
	Projects ports.ProjectRepository
	Tokens   ports.TokenService
	Hasher   *service.PasswordHasher
	Throttle ports.SigninThrottle
	Audit    ports.AuditRecorder
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("teamboard"))
	e.Use(middleware.Gate(d.Tokens, d.Users))

	// --- Services and handlers ---
	authService := service.NewAuthService(d.Users, d.Tokens, d.Hasher, d.Throttle, d.Audit, d.Log)
	userService := service.NewUserService(d.Users, d.Hasher)
	projectService := service.NewProjectService(d.Projects)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)

	// --- Public auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/refresh", authHandler.Refresh)

	// --- Project routes ---
	ceo := middleware.RequireRole(domain.RoleCEO)
	leads := middleware.RequireRole(domain.RoleCEO, domain.RoleTeamLeader)
	everyone := middleware.RequireRole(domain.RoleCEO, domain.RoleTeamLeader, domain.RoleTeamMember)

	projects := e.Group("/projects")
	projects.POST("", projectHandler.Create, ceo)
	projects.PUT("/:title", projectHandler.Update, ceo)
	projects.PATCH("/:title/status", projectHandler.UpdateStatus, leads)
	projects.DELETE("/:title", projectHandler.Delete, ceo)
	projects.GET("", projectHandler.List, everyone)
	projects.GET("/:title", projectHandler.Get, everyone)

	// --- User administration routes ---
	users := e.Group("/users")
	users.GET("", userHandler.List, ceo)
	users.GET("/:email", userHandler.Get, leads)
	users.POST("", userHandler.Create, ceo)
	users.PUT("/:email", userHandler.Update, ceo)
	users.DELETE("/:email", userHandler.Delete, ceo)
	users.PATCH("/:email/role", userHandler.UpdateRole, ceo)

	// --- Ops surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
