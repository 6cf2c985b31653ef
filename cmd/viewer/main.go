package main

import (
	"chatgraph/domain"
	"chatgraph/repositories"
	"fmt"
	"log"
	"os"

	"github.com/abadojack/whatlanggo"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	// VIEWER_BADGER_FILEPATH reads the mirrored dataset instead of the JSON file
	BadgerFilepath string `envconfig:"VIEWER_BADGER_FILEPATH"`
	DatasetPath    string `envconfig:"VIEWER_DATASET_PATH" default:"chats.json"`
	// VIEWER_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"VIEWER_COLOURS" default:"true"`
}

// The viewer renders the dataset as tables: one participants table and one
// messages table per chat, with a detected language column per message.
func main() {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if !cfg.Colours {
		color.Disable()
	}
	logger := logs.GetLoggerFromString("warn")

	var chats []domain.Chat
	switch {
	case cfg.BadgerFilepath != "":
		// BypassLockGuard allows opening while the server holds the lock
		opts := badger.DefaultOptions(cfg.BadgerFilepath).
			WithReadOnly(true).
			WithBypassLockGuard(true).
			WithLoggingLevel(badger.WARNING)
		db, err := badger.Open(opts)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		chats, err = repositories.NewChatRepository(db, logger).LoadChats()
		if err != nil {
			log.Fatalf("Failed to read dataset: %v", err)
		}
	default:
		loaded, err := repositories.NewDatasetLoader(logger).LoadFile(cfg.DatasetPath)
		if err != nil {
			log.Fatalf("Failed to read dataset: %v", err)
		}
		chats = loaded
	}

	for _, chat := range chats {
		color.Cyan.Printf("\nChat %s (%d users, %d messages)\n", chat.ID, len(chat.Users), len(chat.Messages))

		users := tablewriter.NewWriter(os.Stdout)
		users.SetHeader([]string{"User ID", "Name"})
		for _, u := range chat.Users {
			users.Append([]string{u.ID, u.Name})
		}
		users.Render()

		if len(chat.Messages) == 0 {
			continue
		}
		messages := tablewriter.NewWriter(os.Stdout)
		messages.SetHeader([]string{"ID", "Created At", "User", "Lang", "Text"})
		for _, m := range chat.Messages {
			info := whatlanggo.Detect(m.Text)
			messages.Append([]string{
				m.ID,
				m.CreatedAt,
				m.User.Name,
				whatlanggo.LangToString(info.Lang),
				m.Text,
			})
		}
		messages.Render()
	}
	fmt.Println()
}
