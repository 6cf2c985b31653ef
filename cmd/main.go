package main

import (
	"chatgraph/graph"
	"chatgraph/internal"
	"chatgraph/moderation"
	"chatgraph/repositories"
	"chatgraph/services"
	"chatgraph/store"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so that every defer (database close included)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Bulk load: the store is fully rebuilt from the dataset at every
	// start; a malformed dataset aborts here instead of serving bad data.
	loader := repositories.NewDatasetLoader(log)
	chats, err := loader.LoadFile(config.DatasetPath)
	if err != nil {
		return fmt.Errorf("bulk load failed: %w", err)
	}

	st, err := store.NewChatStore(chats)
	if err != nil {
		return fmt.Errorf("store init failed: %w", err)
	}
	registry := store.NewUserRegistry(st)

	// 3. Optional Badger mirror + debug inspector
	if config.BadgerFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()

		repo := repositories.NewChatRepository(db, log)
		if err := repo.ImportChats(chats); err != nil {
			return fmt.Errorf("dataset import failed: %w", err)
		}
		internal.StartDebugServer(db, config.DebugPort, func() map[string]any {
			chatCount, messageCount := st.Counts()
			return map[string]any{
				"Chats":    chatCount,
				"Messages": messageCount,
			}
		})
		log.Info("Debug inspector started", "port", config.DebugPort)
	}

	// 4. Optional moderation
	var moderator *moderation.Moderator
	if config.CensoredWordsPath != "" {
		words, err := moderation.LoadWords(config.CensoredWordsPath)
		if err != nil {
			return fmt.Errorf("censored words loading failed: %w", err)
		}
		mask := []rune(config.CensoredChar)
		if len(mask) != 1 {
			return fmt.Errorf("CENSORED_CHARACTER must be a single character, got %q", config.CensoredChar)
		}
		moderator, err = moderation.NewModerator(words, mask[0])
		if err != nil {
			return fmt.Errorf("moderator init failed: %w", err)
		}
		log.Info("Moderation enabled", "words", len(words))
	}

	// 5. Services & Schema
	queryService := services.NewQueryService(st, log)
	mutationService := services.NewMutationService(st, registry, moderator, log)
	schema, err := graph.NewSchema(queryService, mutationService, registry)
	if err != nil {
		return fmt.Errorf("schema build failed: %w", err)
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. HTTP Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	mux := http.NewServeMux()
	mux.Handle("/graphql", graph.Handler(log, schema))
	server := &http.Server{Addr: address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting GraphQL server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
