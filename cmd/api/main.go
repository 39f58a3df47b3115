package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixify/internal/cache/result"
	"fixify/internal/config"
	"fixify/internal/correct"
	"fixify/internal/engine"
	"fixify/internal/llm"
	"fixify/internal/llmclient"
	"fixify/internal/server"
	"fixify/internal/server/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := log.New(os.Stderr, "fixify ", log.LstdFlags)

	client, err := buildClient(cfg, logger)
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}
	defer client.Close()

	cache, err := result.New(cfg.Cache.Entries, cfg.Cache.TTL)
	if err != nil {
		log.Fatalf("result cache: %v", err)
	}

	catalog := engine.NewCatalog()
	corrector := correct.New(client, cfg.LLM.Timeout, correct.WithLogger(logger))
	eng := engine.New(catalog, corrector, logger)

	srv := server.New(cfg.Port, server.NewMux(handler.NewDebugHandler(eng, cache, logger)), logger)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}

// buildClient constructs the provider from config and wraps it with the
// middleware chain: one retry on transient failure, optional rate limiting,
// and request logging.
func buildClient(cfg *config.Config, logger *log.Logger) (llmclient.Client, error) {
	var inner llmclient.Client
	var err error
	switch cfg.LLM.Provider {
	case "groq":
		inner, err = llmclient.NewGroqClient(cfg.LLM.APIKey, cfg.LLM.Model)
	case "fake":
		inner = llmclient.NewFakeClient("")
	default:
		inner, err = llmclient.NewGeminiClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model)
	}
	if err != nil {
		return nil, err
	}
	return llm.Wrap(inner,
		llm.WithLogging(logger),
		llm.RateLimit(cfg.LLM.RPS, cfg.LLM.Burst),
		llm.Retry(cfg.LLM.MaxAttempts, 300*time.Millisecond),
	), nil
}
