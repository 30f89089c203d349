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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/echo-journal/echod/internal/adapter/gateway"
	"github.com/echo-journal/echod/internal/adapter/llm"
	"github.com/echo-journal/echod/internal/adapter/tts"
	"github.com/echo-journal/echod/internal/config"
	"github.com/echo-journal/echod/internal/followup"
	"github.com/echo-journal/echod/internal/genai"
	"github.com/echo-journal/echod/internal/metrics"
	"github.com/echo-journal/echod/internal/service"
	"github.com/echo-journal/echod/internal/store"
	handler "github.com/echo-journal/echod/internal/transport/http"
	"github.com/echo-journal/echod/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting echod...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Gateway URL: %s", cfg.GatewayURL)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize metrics
	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	// Initialize LLM client and generator
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel)
	generator := genai.NewGenerator(llmClient, cfg.LLMTimeout, cfg.DefaultDelay, collector)

	// Initialize speech client
	var synthesizer tts.Synthesizer
	if cfg.OpenAIAPIKey != "" {
		synthesizer = tts.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.TTSModel)
	}

	// Initialize gateway client
	gatewayClient := gateway.NewClient(cfg.GatewayURL)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Quiet-hours check for deferred deliveries
	allow := func(ctx context.Context, userID string, at time.Time) (bool, string) {
		user, err := db.GetUser(ctx, userID)
		if err != nil || user == nil {
			return true, ""
		}
		decision, err := policyEngine.Evaluate(ctx, policy.Input{
			UserID:     userID,
			Now:        at.In(cfg.Location).Format("15:04"),
			QuietStart: user.QuietHours.Start,
			QuietEnd:   user.QuietHours.End,
		})
		if err != nil {
			log.Printf("WARN: policy evaluation failed for user %s: %v", userID, err)
			return true, ""
		}
		if decision == policy.DecisionSuppress {
			return false, "quiet hours"
		}
		return true, ""
	}

	// Initialize scheduler
	scheduler := followup.NewScheduler(gatewayClient, allow, collector)
	defer scheduler.Stop()

	// Initialize service
	svc := service.New(db, generator, scheduler, synthesizer, cfg, collector)

	// Initialize handler
	h := handler.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down echod...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("echod stopped")
}
