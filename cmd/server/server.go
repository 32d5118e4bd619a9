package main

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
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wrenhall/homebrew-api/internal/engine/dnd5e"
	v1 "github.com/wrenhall/homebrew-api/internal/handlers/api/v1"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/dice"
	"github.com/wrenhall/homebrew-api/internal/orchestrators/homebrew"
	"github.com/wrenhall/homebrew-api/internal/pkg/clock"
	"github.com/wrenhall/homebrew-api/internal/pkg/idgen"
	redisclient "github.com/wrenhall/homebrew-api/internal/redis"
	"github.com/wrenhall/homebrew-api/internal/repositories/content"
	"github.com/wrenhall/homebrew-api/internal/repositories/rollsession"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the homebrew API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	realClock := clock.New()

	contentRepo, err := content.NewRedis(&content.RedisConfig{
		Client: client,
		Clock:  realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create content repository: %w", err)
	}

	sessionRepo, err := rollsession.NewRedisRepository(&rollsession.Config{
		Client: client,
		Clock:  realClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create roll session repository: %w", err)
	}

	homebrewService, err := homebrew.NewOrchestrator(&homebrew.Config{
		Engine:      dnd5e.New(),
		ContentRepo: contentRepo,
		IDGenerator: idgen.NewUUID("content"),
	})
	if err != nil {
		return fmt.Errorf("failed to create homebrew orchestrator: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		RollSessionRepo: sessionRepo,
		IDGenerator:     idgen.NewUUID("roll"),
	})
	if err != nil {
		return fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	handler, err := v1.NewHandler(&v1.Config{
		HomebrewService: homebrewService,
		DiceService:     diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("HTTP server starting on port %d...", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Received shutdown signal, gracefully stopping...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Println("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}
