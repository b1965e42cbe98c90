package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/castforge/podcast-engine/internal/config"
	"github.com/castforge/podcast-engine/internal/observability"
	"github.com/castforge/podcast-engine/internal/pipeline"
	"github.com/castforge/podcast-engine/internal/provider"
	"github.com/castforge/podcast-engine/internal/server"
	"github.com/castforge/podcast-engine/internal/synth"
	"github.com/castforge/podcast-engine/internal/transcript"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use fmt for fatal errors before logger is initialized
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	observability.InitLogger(cfg.LogLevel, cfg.LogPretty)
	logger := observability.GetLogger()

	logger.Info().
		Str("port", cfg.Port).
		Str("speech_model", cfg.SpeechModel).
		Str("audio_dir", cfg.AudioDir).
		Str("log_level", cfg.LogLevel).
		Bool("metrics_enabled", cfg.MetricsEnabled).
		Msg("Podcast Engine starting")

	// Durable storage for run artifacts
	store, err := pipeline.NewStore(cfg.AudioDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create audio store")
	}

	// Speech synthesis pipeline
	speechClient := provider.NewSpeechClient(cfg)
	synthesizer := synth.New(speechClient, cfg, observability.WithComponent("synth"))
	orchestrator := pipeline.NewOrchestrator(synthesizer, store, cfg, observability.WithComponent("pipeline"))

	// Transcript generation is optional; without an LLM key the endpoints
	// report an error instead of calling out.
	var generator *transcript.Generator
	if cfg.LLMAPIKey != "" {
		generator, err = transcript.NewGenerator(cfg.LLMAPIKey, cfg.LLMModel, observability.WithComponent("transcript"))
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create transcript generator")
		}
	} else {
		logger.Warn().Msg("LLM_API_KEY not set, transcript generation disabled")
	}

	// Create HTTP server
	mux := http.NewServeMux()
	server.New(cfg, orchestrator, generator, observability.WithComponent("server")).Register(mux)

	// Health check endpoint
	mux.HandleFunc("/health", observability.HealthCheckHandler())

	// Readiness endpoint
	speechCheck := func(ctx context.Context) (bool, error) {
		if cfg.SpeechAPIKey == "" {
			return false, fmt.Errorf("speech API key not configured")
		}
		return true, nil
	}
	storeCheck := func(ctx context.Context) (bool, error) {
		if _, err := os.Stat(store.Root()); err != nil {
			return false, err
		}
		return true, nil
	}
	mux.HandleFunc("/ready", observability.ReadinessHandler(map[string]observability.HealthCheckFunc{
		"speech_provider": speechCheck,
		"audio_store":     storeCheck,
	}))

	// Metrics endpoint (Prometheus)
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
		logger.Info().Msg("Prometheus metrics enabled at /metrics")
	}

	// Create HTTP server. WriteTimeout stays generous because audio runs
	// stream events for minutes.
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Msg("Server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
