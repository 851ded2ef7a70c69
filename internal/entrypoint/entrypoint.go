package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/shelf/internal/auth"
	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/database/quotations"
	"github.com/mrlokans/shelf/internal/database/users"
	http_controllers "github.com/mrlokans/shelf/internal/http"
	"github.com/mrlokans/shelf/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// SeedOnStartup applies the configured seeding policy. With FailFast a
// seeding error is returned to the caller, otherwise it is only logged.
func SeedOnStartup(db *database.Database, cfg config.Seed) error {
	if !cfg.OnStartup {
		return nil
	}

	seeded, err := db.Seed()
	if err != nil {
		if cfg.FailFast {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		log.Printf("WARNING: failed to seed database, continuing: %v", err)
		return nil
	}
	if seeded {
		log.Printf("Seeded sample books and quotations")
	}
	return nil
}

var newDatabase = database.NewDatabase

// OpenDatabase opens and migrates the configured store, then runs the startup
// seed. The database is closed again when seeding aborts startup.
func OpenDatabase(cfg *config.Config) (*database.Database, error) {
	db, err := newDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := SeedOnStartup(db, cfg.Seed); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Error closing database: %v", closeErr)
		}
		return nil, err
	}
	return db, nil
}

// BuildRouter wires repositories, services and controllers on top of db.
// The returned controller owns the login rate limiter and must be stopped.
func BuildRouter(db *database.Database, cfg *config.Config, version string) (*gin.Engine, *auth.Controller) {
	bookService := services.NewBookService(books.NewRepository(db.DB))
	quotationService := services.NewQuotationService(quotations.NewRepository(db.DB))

	issuer := auth.NewTokenIssuer(cfg.JWT)
	authService := auth.NewService(users.NewRepository(db.DB), issuer, cfg.Auth)
	rateLimiter := auth.NewRateLimiter(auth.RateLimitConfigFrom(cfg.Auth))
	authController := auth.NewController(authService, rateLimiter)

	if count, err := authService.UserCount(); err == nil && count == 0 {
		log.Printf("No users found. Register one via POST /api/auth/register or the create-user command.")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:         db,
		Version:          version,
		Books:            bookService,
		Quotations:       quotationService,
		AuthController:   authController,
		BearerMiddleware: auth.NewBearerMiddleware(issuer),
	})

	return router, authController
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Shelf v%s (%s)", version, cfg.Global.Environment)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	db, err := OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	router, authController := BuildRouter(db, cfg, version)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		authController.Stop()
	}

	Serve(router, cfg, onShutdown)
}
