package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskdeck/todo-api/docs"
	"github.com/taskdeck/todo-api/internal/api/handler"
	"github.com/taskdeck/todo-api/internal/api/middleware"
	"github.com/taskdeck/todo-api/internal/core/service"
	"github.com/taskdeck/todo-api/internal/infrastructure/config"
	mongodb "github.com/taskdeck/todo-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskdeck/todo-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/taskdeck/todo-api/internal/infrastructure/http/handlers"
	"github.com/taskdeck/todo-api/internal/web"
)

// tokenTTL is fixed, not configurable per request.
const tokenTTL = 180 * time.Minute

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("todoapi"))

	// --- Dependencies ---
	codec := service.NewTokenCodec(cfg.JWTSecret, tokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	todoRepo := mongodb.NewTodoRepository(db)
	todoCache := redisdb.NewTodoCache(rdb)

	authService := service.NewAuthService(userRepo, codec, log)
	userService := service.NewUserService(userRepo, log)
	todoService := service.NewTodoService(todoRepo, todoCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	todoHandler := handler.NewTodoHandler(todoService)
	pageHandler := handler.NewPageHandler(todoService)

	apiAuth := middleware.Auth(codec)
	pageAuth := middleware.PageAuth(codec)

	// --- Public routes ---
	e.POST("/token", authHandler.Token)
	e.POST("/create-user", authHandler.CreateUser)

	// --- Todo API (bearer token required) ---
	e.GET("/todo/:id", todoHandler.Get, apiAuth)
	e.GET("/todos", todoHandler.List, apiAuth)
	e.POST("/create-todo", todoHandler.Create, apiAuth)
	e.PUT("/edit-todo/:id", todoHandler.Update, apiAuth)
	e.DELETE("/delete-todo/:id", todoHandler.Delete, apiAuth, middleware.RequireRole("admin"))

	// --- User API (bearer token required) ---
	e.GET("/get-user", userHandler.Me, apiAuth)
	e.PUT("/update-password", userHandler.ChangePassword, apiAuth)
	e.PUT("/update-phone-number", userHandler.ChangePhoneNumber, apiAuth)

	// --- Pages (cookie identity; failures redirect to login) ---
	e.GET("/", pageHandler.Home)
	e.GET("/login-page", pageHandler.LoginPage)
	e.GET("/register-page", pageHandler.RegisterPage)
	e.GET("/todo-page", pageHandler.TodoPage, pageAuth)
	e.GET("/add-todo-page", pageHandler.AddTodoPage, pageAuth)
	e.GET("/edit-todo-page/:id", pageHandler.EditTodoPage, pageAuth)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/healthy", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
