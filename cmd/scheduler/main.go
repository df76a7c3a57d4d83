package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/denisMujuzi/ezyagric-backend/internal/config"
	"github.com/denisMujuzi/ezyagric-backend/internal/domain"
	"github.com/denisMujuzi/ezyagric-backend/internal/repository"
	"github.com/denisMujuzi/ezyagric-backend/pkg/dates"
)

func main() {
	log.Println("Starting activity status scheduler...")

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	activityRepo := repository.NewActivityRepository(db)

	// Run in the civil timezone so the sweep fires just after the local
	// day rolls over, not the UTC one
	c := cron.New(cron.WithLocation(cfg.Location()))

	// Daily job to flip past-due planned activities to OVERDUE. The read
	// path performs the same idempotent flip lazily; this just keeps rows
	// fresh for seasons nobody is reading.
	_, err = c.AddFunc("5 0 * * *", func() {
		if err := sweepOverdue(activityRepo, cfg); err != nil {
			log.Printf("Overdue sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Error scheduling overdue sweep: %v", err)
	}

	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func sweepOverdue(activityRepo repository.ActivityRepository, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	today := dates.Today(time.Now(), cfg.Location())

	due, err := activityRepo.ListPlannedDueBefore(ctx, today, []string{domain.StatusCompleted, domain.StatusOverdue})
	if err != nil {
		return err
	}

	for _, activity := range due {
		if err := activityRepo.UpdatePlannedStatus(ctx, activity.ID, domain.StatusOverdue); err != nil {
			return err
		}
	}

	log.Printf("Overdue sweep flipped %d planned activities", len(due))
	return nil
}
