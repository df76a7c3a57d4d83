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

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/denisMujuzi/ezyagric-backend/internal/auth"
	"github.com/denisMujuzi/ezyagric-backend/internal/config"
	"github.com/denisMujuzi/ezyagric-backend/internal/handler"
	"github.com/denisMujuzi/ezyagric-backend/internal/repository"
	"github.com/denisMujuzi/ezyagric-backend/internal/service"
	"github.com/denisMujuzi/ezyagric-backend/pkg/response"
)

func main() {
	// Load .env before anything reads the environment
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	farmerRepo := repository.NewFarmerRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	seasonRepo := repository.NewSeasonRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize services
	farmerService := service.NewFarmerService(farmerRepo, redisClient, cfg)
	farmService := service.NewFarmService(farmRepo)
	seasonService := service.NewSeasonService(seasonRepo, farmRepo, activityRepo, cfg.Location())

	// Initialize handlers
	farmerHandler := handler.NewFarmerHandler(farmerService)
	farmHandler := handler.NewFarmHandler(farmService, cfg.Auth.AdminKey)
	seasonHandler := handler.NewSeasonHandler(seasonService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Setup routes
	router := setupRoutes(cfg, farmerHandler, farmHandler, seasonHandler, healthHandler)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	cfg *config.Config,
	farmerHandler *handler.FarmerHandler,
	farmHandler *handler.FarmHandler,
	seasonHandler *handler.SeasonHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.RequestIDMiddleware)
	router.Use(response.LoggingMiddleware)
	router.Use(response.CORSMiddleware)

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	bearer := auth.Middleware(cfg.Auth.JWTSecret)
	admin := auth.AdminOnly(cfg.Auth.AdminKey)

	// Farmer routes; registration and listing are admin-gated
	router.HandleFunc("/farmers/login", farmerHandler.Login).Methods("POST")
	router.Handle("/farmers", admin(http.HandlerFunc(farmerHandler.Register))).Methods("POST")
	router.Handle("/farmers", admin(http.HandlerFunc(farmerHandler.List))).Methods("GET")
	router.Handle("/farmers/{farmerId:[0-9]+}", admin(http.HandlerFunc(farmerHandler.Delete))).Methods("DELETE")

	// Farm routes
	router.Handle("/farms", bearer(http.HandlerFunc(farmHandler.Create))).Methods("POST")
	router.Handle("/farms", auth.OptionalMiddleware(cfg.Auth.JWTSecret)(http.HandlerFunc(farmHandler.List))).Methods("GET")
	router.Handle("/farms/{farmId:[0-9]+}", bearer(http.HandlerFunc(farmHandler.Update))).Methods("PUT")
	router.Handle("/farms/{farmId:[0-9]+}", bearer(http.HandlerFunc(farmHandler.Delete))).Methods("DELETE")

	// Season routes
	seasons := router.PathPrefix("/seasons").Subrouter()
	seasons.Use(bearer)
	seasons.HandleFunc("", seasonHandler.CreateSeason).Methods("POST")
	seasons.HandleFunc("/{seasonId:[0-9]+}", seasonHandler.UpdateSeason).Methods("PUT")
	seasons.HandleFunc("/{seasonId:[0-9]+}/planned-activities", seasonHandler.AddPlannedActivities).Methods("POST")
	seasons.HandleFunc("/{seasonId:[0-9]+}/actual-activities", seasonHandler.AddActualActivities).Methods("POST")
	seasons.HandleFunc("/{seasonId:[0-9]+}", seasonHandler.GetSeasonDetails).Methods("GET")
	seasons.HandleFunc("/{seasonId:[0-9]+}/summary", seasonHandler.GetSeasonSummary).Methods("GET")

	return router
}
