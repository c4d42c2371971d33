package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paywallet/paywallet-backend/internal/adapter/api"
	"github.com/paywallet/paywallet-backend/internal/adapter/authorization"
	"github.com/paywallet/paywallet-backend/internal/adapter/notification"
	"github.com/paywallet/paywallet-backend/internal/adapter/repository/memory"
	"github.com/paywallet/paywallet-backend/internal/adapter/repository/postgres"
	"github.com/paywallet/paywallet-backend/internal/config"
	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/paywallet/paywallet-backend/internal/usecase/auth"
	"github.com/paywallet/paywallet-backend/internal/usecase/transfer"
	"github.com/paywallet/paywallet-backend/internal/usecase/wallet"
)

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Select the ledger: Postgres when a database is configured,
	// the seeded in-memory ledger otherwise
	var ledger domain.Ledger
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		ledger = postgres.NewLedgerRepository(db, cfg.AccountEmail)
		log.Println("Using Postgres ledger")
	} else {
		ledger = memory.NewLedger()
		log.Println("Using in-memory ledger with sample data")
	}

	// 3. Select the authorization gateway
	var authorizer domain.AuthorizationGateway
	if cfg.AuthorizeServiceURL != "" {
		authorizer = authorization.NewClient(cfg.AuthorizeServiceURL, cfg.AuthorizeServiceKey)
		log.Printf("Using remote authorization service at %s", cfg.AuthorizeServiceURL)
	} else {
		authorizer = authorization.NewStaticAuthorizer()
		log.Println("Using static authorizer")
	}

	// 4. Select the notification sink; fall back to logging when the
	// broker is unreachable so transfers keep working
	var notifier domain.NotificationSink = notification.NewLogSink()
	if cfg.RabbitMQURL != "" {
		sink, err := notification.NewEventSink(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("level=warn msg=\"RabbitMQ unavailable, falling back to log notifications\" error=%v", err)
		} else {
			defer sink.Close()
			notifier = sink
			log.Println("Publishing transfer events to RabbitMQ")
		}
	}

	// 5. Initialize services (use cases)
	jwtSecret := []byte(cfg.JWTSecret)
	authService := auth.NewService(memory.NewAuthRepository(), jwtSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	walletService := wallet.NewService(ledger)
	transferService := transfer.NewService(ledger, authorizer, notifier)

	// 6. Start HTTP server
	handlers := api.NewHandlers(authService, walletService, transferService)
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: api.Routes(handlers, jwtSecret),
	}

	go func() {
		log.Printf("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	waitForShutdown(server)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}
