package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"

	"cardsmith/pkg/card"
	"cardsmith/pkg/config"
	"cardsmith/pkg/inference"
	"cardsmith/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}
	log.SetLevel(cfg.LogLevel)

	gemini, err := inference.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	if err != nil {
		log.Fatal("failed to create gemini client", "error", err)
	}

	var stats inference.Inferencer = inference.NewGeminiInferencer(gemini, cfg.TextModel)
	if cfg.StatsProvider != config.ProviderGemini {
		stats = inference.NewOpenAIInferencer(cfg.StatsAPIKey, cfg.StatsBaseURL, cfg.StatsModel)
		log.Info("Card stats via OpenAI-compatible provider", "provider", cfg.StatsProvider, "model", cfg.StatsModel)
	} else {
		log.Info("Card stats via Gemini", "model", cfg.TextModel)
	}
	illustrator := inference.NewGeminiIllustrator(gemini, cfg.ImageModel)

	gen := card.NewGenerator(stats, illustrator, card.Options{
		TextTimeout:  cfg.TextTimeout,
		ImageTimeout: cfg.ImageTimeout,
		WebP:         cfg.ArtworkWebP,
	})

	srv := server.NewServer(gen, cfg.StaticDir)
	srv.Echo.Logger.SetLevel(cfg.EchoLevel())

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
		done()
	}
	<-finishedShutDown
}
