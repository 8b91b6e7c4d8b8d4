package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"fridged/internal/bus"
	"fridged/internal/config"
	"fridged/internal/fridge"
	"fridged/internal/httpapi"
	"fridged/internal/vision"
)

func main() {
	// Optional .env for the vision API key and overrides
	_ = godotenv.Load()

	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("FRIDGED_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultState := "fridged_state.json"
	if v := os.Getenv("FRIDGED_STATE"); v != "" {
		defaultState = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", os.Getenv("FRIDGED_CONFIG"), "Optional config file (yaml/json/toml)")
	statePath := flag.String("state", defaultState, "Path of the inventory snapshot file (empty disables persistence)")
	visionURL := flag.String("vision-url", os.Getenv("FRIDGED_VISION_URL"), "Base URL of the OpenAI-compatible vision API (empty disables recognition)")
	visionModel := flag.String("vision-model", envOr("FRIDGED_VISION_MODEL", "qwen-vl-plus"), "Vision model id")
	monitorSec := flag.Int("monitor-interval", 60, "Background monitor interval in seconds")
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config %s: %v", *configPath, err)
		}
	}
	// Flags win over file values; file values win over zero.
	if cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if cfg.StatePath == "" {
		cfg.StatePath = *statePath
	}
	if cfg.VisionBaseURL == "" {
		cfg.VisionBaseURL = *visionURL
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = *visionModel
	}
	if cfg.MonitorIntervalSeconds <= 0 {
		cfg.MonitorIntervalSeconds = *monitorSec
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "fridged").Logger()
	httpapi.SetLogger(logger)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins)

	b := bus.New()

	var rec fridge.Recognizer
	if cfg.VisionBaseURL != "" {
		rec = vision.New(cfg.VisionBaseURL, os.Getenv("VISION_API_KEY"), cfg.VisionModel, vision.GridHint{
			LevelTemps:       cfg.LevelTemps,
			SectionsPerLevel: cfg.SectionsPerLevel,
		})
	} else {
		logger.Warn().Msg("no vision API configured; capture events will be ignored")
	}

	eng := fridge.NewWithConfig(fridge.Config{
		LevelTemps:       cfg.LevelTemps,
		SectionsPerLevel: cfg.SectionsPerLevel,
		StatePath:        cfg.StatePath,
		SoonWindowDays:   cfg.SoonWindowDays,
		Publisher:        b,
		Recognizer:       rec,
	})
	eng.RegisterHandlers(b)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Monitor(ctx, time.Duration(cfg.MonitorIntervalSeconds)*time.Second)

	mux := httpapi.NewMux(eng, b)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("state", cfg.StatePath).Msg("fridged listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
