package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"VidaClinic/cache"
	"VidaClinic/config"
	"VidaClinic/database"
	"VidaClinic/events"
	"VidaClinic/routes"
)

func main() {
	// Load configuration from environment
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the relational database
	if _, err := database.InitDB(context.Background(), config.DBURL); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize MongoDB for clinical histories
	if err := database.InitializeMongo(context.Background()); err != nil {
		log.Fatalf("failed to initialize MongoDB client: %v", err)
	}

	// Initialize the cache utility
	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	// Domain event publisher with a supervised consumer
	publisher := events.NewPublisher(256)
	publisher.Subscribe(events.PatientRegistered, func(ctx context.Context, event events.Event) error {
		log.Printf("Patient registered: %s", event.Key)
		return nil
	})
	publisher.Subscribe(events.InvoiceIssued, func(ctx context.Context, event events.Event) error {
		log.Printf("Invoice issued: %s (order %s)", event.Key, event.Payload["order"])
		return nil
	})

	handler := routes.SetupRoutes(cache, config, publisher)

	// Configure and start the server
	srv := &http.Server{
		Addr:           ":8930",
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Println("Starting server on :8930")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	// Drain queued domain events before closing connections
	publisher.Close()

	if err := database.CloseMongo(shutdownCtx); err != nil {
		log.Printf("failed to close MongoDB client: %v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return nil, errors.New("missing MONGO_URL environment variable")
	}

	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	return &config.AppConfig{
		DBURL:        dbURL,
		RedisAddress: redisAddress,
		MongoURL:     mongoURL,
		BearerToken:  bearerToken,
	}, nil
}
