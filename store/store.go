// Package store holds the process-wide in-memory chat collection, the system
// of record for a process lifetime. It is rebuilt from the bulk-load source
// at startup and never persisted back; mutations are lost on restart by
// design.
package store

import (
	"chatgraph/domain"
	"chatgraph/errors"
	"strconv"
	"sync"
	"time"
)

// record pairs a chat with its private message counter so that message id
// assignment and append stay atomic under the store lock.
type record struct {
	chat    domain.Chat
	nextMsg int
}

// ChatStore is the ordered, append-only sequence of chats. A single RWMutex
// serializes all mutations: id assignment and append always happen together,
// so concurrent CreateChat/AppendMessage calls can never mint duplicate ids.
// Readers take the read lock and receive detached copies, never live slices.
type ChatStore struct {
	mu      sync.RWMutex
	records []*record
	nextID  int
}

// NewChatStore builds a store from the bulk-loaded dataset, preserving its
// order. Counters resume after the loaded content: the next chat id is
// len(chats)+1 and each chat's next message id is len(messages)+1.
func NewChatStore(chats []domain.Chat) (*ChatStore, error) {
	s := &ChatStore{nextID: 1}
	for _, chat := range chats {
		if err := s.AppendChat(chat); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AllChats returns the full chat sequence in store order. Every element is a
// detached copy, safe to hold across later mutations.
func (s *ChatStore) AllChats() []domain.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Chat, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.chat.Clone())
	}
	return out
}

// FindChat scans the sequence for the given id. Chat ids are not indexed;
// the store stays small enough that a linear scan is the simplest correct
// lookup.
func (s *ChatStore) FindChat(id string) (domain.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.find(id)
	if !ok {
		return domain.Chat{}, false
	}
	return rec.chat.Clone(), true
}

// AppendChat adds a fully built chat to the end of the sequence. It fails
// only on a malformed record (empty id); callers construct chats completely
// before appending, so a partially built chat never becomes visible.
func (s *ChatStore) AppendChat(chat domain.Chat) error {
	if chat.ID == "" {
		return errors.ErrMalformedChat
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, &record{
		chat:    chat.Clone(),
		nextMsg: len(chat.Messages) + 1,
	})
	s.nextID++
	return nil
}

// CreateChat mints the next store-wide sequential id, builds a chat with the
// given participants and an empty message log, and appends it. Id assignment
// and append share the write lock.
func (s *ChatStore) CreateChat(users []domain.User) domain.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := domain.Chat{
		ID:    strconv.Itoa(s.nextID),
		Users: append([]domain.User(nil), users...),
	}
	s.records = append(s.records, &record{chat: chat, nextMsg: 1})
	s.nextID++
	return chat.Clone()
}

// AppendMessage builds a message with the chat's next sequential id and
// appends it in place. The message id is scoped to the chat, so equal ids in
// two different chats are expected. Returns ErrChatNotFound when the chat
// does not exist; no other chat is ever touched.
func (s *ChatStore) AppendMessage(chatID string, user domain.User, text string, at time.Time) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.find(chatID)
	if !ok {
		return domain.Message{}, errors.ErrChatNotFound
	}

	message := domain.Message{
		ID:        strconv.Itoa(rec.nextMsg),
		Text:      text,
		CreatedAt: at.UTC().Format(time.RFC3339),
		User:      user,
	}
	rec.chat.Messages = append(rec.chat.Messages, message)
	rec.nextMsg++
	return message, nil
}

// Counts reports the number of chats and the total number of messages,
// used by the debug inspector's stats view.
func (s *ChatStore) Counts() (chats int, messages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		messages += len(rec.chat.Messages)
	}
	return len(s.records), messages
}

// find must be called with the lock held.
func (s *ChatStore) find(id string) (*record, bool) {
	for _, rec := range s.records {
		if rec.chat.ID == id {
			return rec, true
		}
	}
	return nil, false
}
