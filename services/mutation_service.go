//go:generate go run go.uber.org/mock/mockgen -source=mutation_service.go -destination=../mocks/mock_mutation_service.go -package=mocks
package services

import (
	"chatgraph/domain"
	"chatgraph/errors"
	"chatgraph/moderation"
	"chatgraph/store"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type IMutationService interface {
	CreateChat(ctx context.Context, userIDs []string) (domain.Chat, error)
	SendMessage(ctx context.Context, chatID, userID, text string) (domain.Message, error)
}

// MutationService is the write side of the API. Every mutation either fully
// succeeds (record completely built, then appended under the store lock) or
// fails before the store is touched — there is no partial write to roll back.
type MutationService struct {
	store     *store.ChatStore
	registry  *store.UserRegistry
	moderator *moderation.Moderator
	log       *slog.Logger
	now       func() time.Time
}

// NewMutationService wires the write path. moderator may be nil, in which
// case message text is stored verbatim.
func NewMutationService(s *store.ChatStore, registry *store.UserRegistry, moderator *moderation.Moderator, log *slog.Logger) *MutationService {
	return &MutationService{
		store:     s,
		registry:  registry,
		moderator: moderator,
		log:       log,
		now:       time.Now,
	}
}

// CreateChat builds a chat from the given participant ids, in order and
// without deduplication, and appends it with the next sequential store id.
// Every id must resolve to a canonical user: an unknown id fails with
// ErrUserNotFound before anything is appended. The new chat starts with an
// empty message log.
func (m *MutationService) CreateChat(ctx context.Context, userIDs []string) (domain.Chat, error) {
	users := make([]domain.User, 0, len(userIDs))
	for _, id := range userIDs {
		user, ok := m.registry.Resolve(id)
		if !ok {
			return domain.Chat{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
		}
		users = append(users, user)
	}

	chat := m.store.CreateChat(users)
	m.log.Info("chat created", "chat_id", chat.ID, "participants", len(chat.Users))
	return chat, nil
}

// SendMessage appends a message to an existing chat. The chat is checked
// first (ErrChatNotFound), then the sender (ErrUserNotFound); the embedded
// user is the canonical snapshot, not whatever the caller claims. When a
// moderator is configured, censored words are masked before the message is
// built.
func (m *MutationService) SendMessage(ctx context.Context, chatID, userID, text string) (domain.Message, error) {
	if _, ok := m.store.FindChat(chatID); !ok {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrChatNotFound, chatID)
	}
	user, ok := m.registry.Resolve(userID)
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, userID)
	}

	if m.moderator != nil {
		text = m.moderator.Censor(text)
	}

	message, err := m.store.AppendMessage(chatID, user, text, m.now())
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %s", err, chatID)
	}
	m.log.Info("message sent", "chat_id", chatID, "message_id", message.ID, "user_id", user.ID)
	return message, nil
}
