package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/sunwatch/slack-sunset-bot/internal/astro"
	"github.com/sunwatch/slack-sunset-bot/internal/config"
	"github.com/sunwatch/slack-sunset-bot/internal/database"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/service"
	"github.com/sunwatch/slack-sunset-bot/internal/geo"
	"github.com/sunwatch/slack-sunset-bot/internal/handlers"
	"github.com/sunwatch/slack-sunset-bot/internal/scheduler"
	"github.com/sunwatch/slack-sunset-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", cfg.Timezone, err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)
	resolver := geo.New(cfg.GeocoderURL)
	calculator := astro.New(cfg.SunsetAPIURL)

	services := service.New(database.NewInstance(db), slackClient, resolver, calculator, loc)

	// Boot recovery: load the durable subscriptions and rederive today's
	// timers from them.
	if err := services.Reminder.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start reminder engine: %v", err)
	}

	sched := scheduler.New(services.Reminder, loc)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start daily scheduler: %v", err)
	}
	defer sched.Stop()

	handler := handlers.New(slackClient, services.Reminder, cfg.SlackSigningSecret, cfg.DefaultAddress)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
