package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/summercamp/enrollment-api/internal/api/handler"
	"github.com/summercamp/enrollment-api/internal/api/middleware"
	"github.com/summercamp/enrollment-api/internal/core/access"
	"github.com/summercamp/enrollment-api/internal/core/domain"
	"github.com/summercamp/enrollment-api/internal/core/ports"
	"github.com/summercamp/enrollment-api/internal/core/service"
	mongodb "github.com/summercamp/enrollment-api/internal/infrastructure/db/mongo"
	redisdb "github.com/summercamp/enrollment-api/internal/infrastructure/db/redis"
)

// Dependencies carries the process-wide collaborators, constructed once at
// startup and torn down at shutdown. Handlers close over nothing else.
type Dependencies struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Payments  ports.PaymentProvider
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. Each route
// declares its access policy here, at the registration site, so sensitivity
// is reviewable in one place.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("enrollment"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(deps.Mongo)
	classRepo := mongodb.NewClassRepository(deps.Mongo)
	instructorRepo := mongodb.NewInstructorRepository(deps.Mongo)
	selectionRepo := mongodb.NewSelectionRepository(deps.Mongo)
	roleCache := redisdb.NewRoleCache(deps.Redis)

	tokenService := service.NewTokenService(deps.JWTSecret, deps.TokenTTL)
	accountService := service.NewAccountService(accountRepo, roleCache, deps.Logger)
	classService := service.NewClassService(classRepo, deps.Logger)
	selectionService := service.NewSelectionService(selectionRepo, deps.Logger)
	paymentService := service.NewPaymentService(deps.Payments, deps.Logger)

	authHandler := handler.NewAuthHandler(tokenService)
	userHandler := handler.NewUserHandler(accountService)
	classHandler := handler.NewClassHandler(classService)
	instructorHandler := handler.NewInstructorHandler(instructorRepo)
	selectionHandler := handler.NewSelectionHandler(selectionService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	auth := middleware.Auth(tokenService)
	guard := func(policy access.Policy, subject middleware.SubjectFunc) echo.MiddlewareFunc {
		return middleware.Guard(policy, accountService, subject)
	}

	// --- Public routes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	e.POST("/jwt", authHandler.IssueToken) // issuance trusts the payload identity
	e.POST("/users", userHandler.Register)
	e.GET("/classes", classHandler.ListApproved)
	e.GET("/instructors", instructorHandler.List)

	// --- Users (protected) ---
	e.GET("/users", userHandler.List,
		auth, guard(access.RoleBound(domain.RoleAdmin), nil))
	e.GET("/users/admin/:email", userHandler.IsAdmin,
		auth, guard(access.IdentityBound(), middleware.SubjectParam("email")))
	e.GET("/users/instructor/:email", userHandler.IsInstructor,
		auth, guard(access.IdentityBound(), middleware.SubjectParam("email")))
	e.PATCH("/users/admin/:id", userHandler.MakeAdmin,
		auth, guard(access.RoleBound(domain.RoleAdmin), nil))
	e.PATCH("/users/instructor/:id", userHandler.MakeInstructor,
		auth, guard(access.RoleBound(domain.RoleAdmin), nil))

	// --- Classes (protected) ---
	e.POST("/classes", classHandler.Create,
		auth, guard(access.RoleBound(domain.RoleInstructor), nil))
	e.GET("/classes/mine", classHandler.ListOwned,
		auth, guard(access.IdentityBound().WithRole(domain.RoleInstructor), middleware.SubjectQuery("email")))
	e.GET("/classes/all", classHandler.ListAll,
		auth, guard(access.RoleBound(domain.RoleAdmin), nil))
	e.PATCH("/classes/:id/status", classHandler.Review,
		auth, guard(access.RoleBound(domain.RoleAdmin), nil))
	e.PATCH("/classes/:id/feedback", classHandler.SetFeedback,
		auth, guard(access.RoleBound(domain.RoleAdmin), nil))

	// --- Instructors (protected) ---
	e.POST("/instructors", instructorHandler.Create,
		auth, guard(access.RoleBound(domain.RoleAdmin), nil))

	// --- Selections (protected) ---
	e.GET("/selected", selectionHandler.List,
		auth, guard(access.IdentityBound(), middleware.SubjectQuery("email")))
	e.POST("/selected", selectionHandler.Select, auth)
	e.DELETE("/selected/:id", selectionHandler.Remove, auth)

	// --- Payments (protected) ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, auth)

	return e
}
