package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"manisera/affirmation-app/internal/api"
	"manisera/affirmation-app/internal/config"
	"manisera/affirmation-app/internal/content"
	"manisera/affirmation-app/internal/plan"
	"manisera/affirmation-app/internal/repository/mongo"
	"manisera/affirmation-app/internal/service"
	"manisera/affirmation-app/internal/session"
	"manisera/affirmation-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title Affirmation Program API
// @version 1.0
// @description API for the 30-day spoken affirmation program: derived day plans, speech-scored sessions, progress and premium tiers.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Affirmation App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB)
		mongo.EnsureProgressIndexes(ctx, appDB)
		mongo.EnsurePremiumIndexes(ctx, appDB)
		log.Println("Index creation process completed.")
	}()

	// --- Load Affirmation Catalog ---
	catalog := loadCatalog(cfg)

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)
	premiumRepo := mongo.NewMongoPremiumRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	generator := plan.NewGenerator(catalog)
	runner := session.NewRunner(capabilitiesFromConfig(cfg.Recognition), cfg.Program.TargetReps)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	premiumService := service.NewPremiumService(premiumRepo, cfg.Premium.CheckoutDelay)
	programService := service.NewProgramService(userRepo, progressRepo, premiumService, generator)
	sessionService := service.NewSessionService(userRepo, progressRepo, premiumService, generator, runner, cfg.Program.TargetReps)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, programService, sessionService, premiumService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// loadCatalog fetches the affirmation catalog from object storage when a
// bucket is configured, falling back to the embedded catalog otherwise (and
// on fetch or parse failure).
func loadCatalog(cfg config.Config) *content.Catalog {
	if cfg.S3.BucketName == "" {
		log.Println("No catalog bucket configured, using embedded catalog.")
		return content.Default()
	}

	catalogStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Printf("WARN: Failed to initialize catalog storage, using embedded catalog: %v", err)
		return content.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	data, err := catalogStorage.FetchCatalog(ctx)
	if err != nil {
		log.Printf("WARN: Failed to fetch catalog, using embedded catalog: %v", err)
		return content.Default()
	}

	catalog, err := content.FromJSON(data)
	if err != nil {
		log.Printf("WARN: Fetched catalog is invalid, using embedded catalog: %v", err)
		return content.Default()
	}
	log.Println("Affirmation catalog loaded from object storage.")
	return catalog
}

// capabilitiesFromConfig maps the recognition config onto the session runner's
// capability knob.
func capabilitiesFromConfig(rc config.RecognitionConfig) session.Capabilities {
	return session.Capabilities{
		Continuous:      rc.Continuous,
		InterimResults:  rc.InterimResults,
		MatchThreshold:  rc.MatchThreshold,
		Language:        rc.Language,
		ListenTimeout:   rc.ListenTimeout,
		NoSpeechRetries: rc.NoSpeechRetries,
		RepCooldown:     rc.RepCooldown,
	}
}
