//go:generate go run go.uber.org/mock/mockgen -source=query_service.go -destination=../mocks/mock_query_service.go -package=mocks
package services

import (
	"chatgraph/domain"
	"chatgraph/store"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

type IQueryService interface {
	Chats() []domain.Chat
	Chat(id string) *domain.Chat
	Messages(chatID string) []domain.Message
	SearchChats(query string) []domain.Chat
	SearchMessages(query string) []domain.Message
}

// QueryService is the read-only side of the API. Absence is never an error
// here: an unknown chat id yields nil (or an empty message list), and search
// with no hits yields an empty slice.
type QueryService struct {
	store *store.ChatStore
	log   *slog.Logger
}

func NewQueryService(s *store.ChatStore, log *slog.Logger) *QueryService {
	return &QueryService{store: s, log: log}
}

func (q *QueryService) Chats() []domain.Chat {
	return q.store.AllChats()
}

// Chat returns nil when no chat carries the id; callers treat that as a
// legitimate "no such chat" result.
func (q *QueryService) Chat(id string) *domain.Chat {
	chat, ok := q.store.FindChat(id)
	if !ok {
		return nil
	}
	return &chat
}

// Messages returns the message log of the chat, or an empty slice when the
// chat does not exist. The lenient empty result is deliberate.
func (q *QueryService) Messages(chatID string) []domain.Message {
	chat, ok := q.store.FindChat(chatID)
	if !ok {
		return []domain.Message{}
	}
	if chat.Messages == nil {
		return []domain.Message{}
	}
	return chat.Messages
}

// SearchChats matches chats where at least one participant name contains the
// query, case-insensitively. Plain substring matching: the empty query
// matches every chat.
func (q *QueryService) SearchChats(query string) []domain.Chat {
	needle := strings.ToLower(query)
	return lo.Filter(q.store.AllChats(), func(chat domain.Chat, _ int) bool {
		return lo.SomeBy(chat.Users, func(user domain.User) bool {
			return strings.Contains(strings.ToLower(user.Name), needle)
		})
	})
}

// SearchMessages applies the same substring rule to message text, over the
// messages of every chat flattened in chat-then-message order.
func (q *QueryService) SearchMessages(query string) []domain.Message {
	needle := strings.ToLower(query)
	all := lo.FlatMap(q.store.AllChats(), func(chat domain.Chat, _ int) []domain.Message {
		return chat.Messages
	})
	return lo.Filter(all, func(message domain.Message, _ int) bool {
		return strings.Contains(strings.ToLower(message.Text), needle)
	})
}
