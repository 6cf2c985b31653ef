package repositories

import (
	"chatgraph/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
)

// DatasetLoader reads the initial chat dataset from a JSON file, the shape
// the store is rebuilt from at every process start. Mutations are never
// written back: the file is a one-time bulk-load source, not a database.
type DatasetLoader struct {
	validate *validator.Validate
	log      *slog.Logger
}

func NewDatasetLoader(log *slog.Logger) *DatasetLoader {
	return &DatasetLoader{validate: validator.New(), log: log}
}

// LoadFile parses and validates the dataset. Any structurally malformed
// record (missing id, name, text or timestamp) aborts with an error so that
// process start fails instead of serving a silently broken store.
func (l *DatasetLoader) LoadFile(path string) ([]domain.Chat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var chats []domain.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	for i, chat := range chats {
		if err := l.validate.Struct(chat); err != nil {
			return nil, fmt.Errorf("invalid chat at index %d: %w", i, err)
		}
	}

	l.log.Info("dataset loaded", "path", path, "chats", len(chats))
	return chats, nil
}
