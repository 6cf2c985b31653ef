//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"chatgraph/domain"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IChatRepository interface {
	ImportChats(chats []domain.Chat) error
	LoadChats() ([]domain.Chat, error)
}

// ChatRepository is the Badger-backed dataset: an alternative bulk-load
// source for the store and the backing of the debug inspector. The serving
// path never writes through it — the in-memory store stays the system of
// record and mutations die with the process.
type ChatRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChatRepository(db *badger.DB, log *slog.Logger) ChatRepository {
	return ChatRepository{db: db, log: log}
}

// ImportChats replaces the stored dataset with the given sequence. The key
// is formatted as "chat:{seq_padded}" so a prefix scan returns chats in
// their original store order (19-digit zero padding keeps lexicographical
// and numerical order aligned).
func (r ChatRepository) ImportChats(chats []domain.Chat) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for i, chat := range chats {
			data, err := json.Marshal(chat)
			if err != nil {
				return fmt.Errorf("encoding chat %s: %w", chat.ID, err)
			}
			key := fmt.Sprintf("chat:%019d", i)
			if err := txn.Set([]byte(key), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadChats prefix-scans the dataset back in import order.
func (r ChatRepository) LoadChats() ([]domain.Chat, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("chat:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				raw = append(raw, append([]byte(nil), val...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	chats := make([]domain.Chat, 0, len(raw))
	for _, data := range raw {
		var chat domain.Chat
		if err := json.Unmarshal(data, &chat); err != nil {
			return nil, fmt.Errorf("decoding stored chat: %w", err)
		}
		chats = append(chats, chat)
	}
	r.log.Debug("dataset read from badger", "chats", len(chats))
	return chats, nil
}
