package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	faqagent "github.com/nithub/faq-agent"
	"github.com/nithub/faq-agent/internal/config"
	"github.com/nithub/faq-agent/internal/handler"
	"github.com/nithub/faq-agent/internal/middleware"
	"github.com/nithub/faq-agent/internal/repository"
	"github.com/nithub/faq-agent/internal/retrieval"
	"github.com/nithub/faq-agent/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(faqagent.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Load the knowledge base and build the vector index
	entries, err := retrieval.LoadCSV(cfg.KnowledgePath)
	if err != nil {
		slog.Error("failed to load knowledge base", "error", err, "path", cfg.KnowledgePath)
		os.Exit(1)
	}
	gemini := service.NewGeminiService(cfg.GeminiAPIKey, cfg.GenerationModel, cfg.EmbeddingModel)

	indexStart := time.Now()
	index, err := retrieval.BuildIndex(ctx, gemini, entries, config.RetrieveTopK)
	if err != nil {
		slog.Error("failed to build vector index", "error", err)
		os.Exit(1)
	}
	slog.Info("vector index ready", "entries", index.Size(), "duration", time.Since(indexStart))

	// Initialize services
	sessions := service.NewSessionStore(config.SessionTimeout, config.SessionIDLength)
	contextService := service.NewContextService(config.RelatedOverlapThreshold)
	generator := service.NewAnswerGenerator(gemini, cfg.OrgName, cfg.OrgDescription, config.AnswerWordLimit)

	var rewriter service.InvitationRewriter
	if cfg.FollowUpLLMFallback {
		rewriter = generator
	}
	followups := service.NewFollowupService(rewriter)
	extractor := service.NewQuestionExtractor(cfg.OrgName)
	conversations := repository.NewConversationRepository(pool)
	qa := service.NewQAService(sessions, index, generator, conversations, contextService, followups, extractor)

	// Initialize handler
	h := handler.New(qa, sessions, conversations)
	mux := http.NewServeMux()
	h.Register(mux)

	var root http.Handler = mux
	root = middleware.CORS()(root)
	root = middleware.Logging()(root)
	root = middleware.RequestID()(root)
	root = middleware.Recover()(root)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	// Start expired session sweeper
	go func() {
		ticker := time.NewTicker(config.SessionSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := sessions.RemoveExpired(); removed > 0 {
					slog.Info("expired sessions removed", "count", removed)
				}
			}
		}
	}()

	// Start server
	go func() {
		slog.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped gracefully")
}
