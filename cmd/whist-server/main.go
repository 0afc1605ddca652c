package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rowhist/whist-server/internal/room"
	"github.com/rowhist/whist-server/internal/server"
	"github.com/rowhist/whist-server/pkg/models"
)

func main() {
	// Parse command line arguments
	config := parseFlags()

	// Show help and exit if requested
	if config.Help {
		flag.Usage()
		return
	}

	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Set port from environment if not set by flag
	if config.Port == "" {
		config.Port = os.Getenv("PORT")
		if config.Port == "" {
			config.Port = "3000"
		}
	}

	run(config)
}

func parseFlags() *models.Config {
	config := models.DefaultConfig()

	flag.StringVar(&config.Port, "port", "", "Web server port (default: 3000 or PORT env var)")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "Shuffle seed, 0 for time-seeded deals")
	flag.BoolVar(&config.Verbose, "verbose", config.Verbose, "Enable verbose logging")
	flag.BoolVar(&config.Verbose, "v", config.Verbose, "Enable verbose logging (shorthand)")
	flag.BoolVar(&config.Help, "help", config.Help, "Show help information")
	flag.BoolVar(&config.Help, "h", config.Help, "Show help information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Whist Server - Romanian Whist game API\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return config
}

func run(config *models.Config) {
	rooms := room.NewRegistry(config.Seed)
	s := server.New(rooms)

	httpServer := &http.Server{
		Addr:    ":" + config.Port,
		Handler: s.Router(),
	}

	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("Server running on port %s", config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-stop
	log.Println("Interrupt received. Shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	} else {
		log.Println("Server gracefully stopped")
	}
}
