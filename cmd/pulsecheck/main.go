package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulsecheck/pulsecheck/internal/api"
	"github.com/pulsecheck/pulsecheck/internal/config"
	"github.com/pulsecheck/pulsecheck/internal/rules"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	log.Println("Starting PulseCheck...")

	cfg := loadConfig()
	setupLogging(&cfg.Logging)

	ruleset := loadRules(&cfg.Rules)
	log.Printf("Loaded %d diagnosis rules", len(ruleset))

	server := api.NewServer(cfg, ruleset)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("PulseCheck listening on port %d", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down PulseCheck...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("PulseCheck stopped")
}

func loadConfig() *config.Config {
	configPath := os.Getenv("PULSECHECK_CONFIG")
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Printf("Failed to load config from %s: %v, using defaults", configPath, err)
			return config.LoadFromEnv()
		}
		return cfg
	}
	return config.LoadFromEnv()
}

func loadRules(cfg *config.RulesConfig) []rules.Rule {
	if cfg.File == "" {
		return rules.Default()
	}
	ruleset, err := rules.Load(cfg.File)
	if err != nil {
		log.Fatalf("Failed to load rule file %s: %v", cfg.File, err)
	}
	return ruleset
}

func setupLogging(cfg *config.LoggingConfig) {
	fileLogger := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	if cfg.Console {
		log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
		return
	}
	log.SetOutput(fileLogger)
}
