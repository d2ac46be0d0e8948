// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "shopku-api/internal/api"
	"shopku-api/internal/api/handler"
	"shopku-api/internal/auth"
	"shopku-api/internal/config"
	"shopku-api/internal/repository"
	"shopku-api/internal/repository/postgres"
	"shopku-api/internal/service"
	"shopku-api/internal/util"
	"shopku-api/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository    repository.UserRepository
	ProductRepository repository.ProductRepository
	CartRepository    repository.CartRepository
	OrderRepository   repository.OrderRepository

	// Services
	AuthService    service.AuthService
	CatalogService service.CatalogService
	CartService    service.CartService
	OrderService   service.OrderService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if app.Config.MigrationsDir != "" {
		if err := db.Migrate(app.DB, app.Config.MigrationsDir); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Logger.Info("Database migrations applied.", "dir", app.Config.MigrationsDir)
	}

	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.ProductRepository = postgres.NewProductRepository(app.DB)
	app.CartRepository = postgres.NewCartRepository(app.DB)
	app.OrderRepository = postgres.NewOrderRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	tokens := auth.NewTokenManager(app.Config.JWTSecret, app.Config.JWTTTL)

	app.AuthService = service.NewAuthService(
		app.DB,
		app.DB,
		app.UserRepository,
		tokens,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.CatalogService = service.NewCatalogService(app.DB, app.ProductRepository)
	app.CartService = service.NewCartService(
		app.DB,
		app.DB,
		app.CartRepository,
		app.ProductRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.OrderService = service.NewOrderService(
		app.DB,
		app.DB,
		app.UserRepository,
		app.OrderRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	productHandler := handler.NewProductHandler(app.CatalogService, app.Logger)
	cartHandler := handler.NewCartHandler(app.CartService, app.Logger)
	orderHandler := handler.NewOrderHandler(app.OrderService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, productHandler, cartHandler, orderHandler, tokens, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
