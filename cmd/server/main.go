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

	"axiom-backend/internal/config"
	"axiom-backend/internal/handlers"
	"axiom-backend/internal/router"
	"axiom-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Axiom Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Prepare Static Assets Directory ────
	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		log.Fatalf("✗ Static directory setup failed: %v", err)
	}
	log.Println("✓ Static directory ready")

	// ──── Step 3: Initialize Ollama Client ────
	ollamaService := services.NewOllamaService(cfg.OllamaURL, cfg.TextModel, cfg.VisionModel, cfg.ChatTimeout)
	log.Printf("✓ Ollama client initialized (%s)", cfg.OllamaURL)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(ollamaService)
	modelsHandler := handlers.NewModelsHandler(cfg.TextModel, cfg.VisionModel)
	staticHandler := handlers.NewStaticHandler(cfg.IndexFile, cfg.StaticDir)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, modelsHandler, staticHandler)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// The response cannot be written before the backend call returns.
		WriteTimeout: cfg.ChatTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Axiom Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  UI:  http://localhost:%s/", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
