package store

import (
	"chatgraph/domain"
	"chatgraph/errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixtureChats() []domain.Chat {
	return []domain.Chat{
		{
			ID:    "1",
			Users: []domain.User{{ID: "u1", Name: "Ana"}},
			Messages: []domain.Message{
				{ID: "1", Text: "Hello there", CreatedAt: "2024-01-01T10:00:00Z", User: domain.User{ID: "u1", Name: "Ana"}},
			},
		},
		{
			ID:    "2",
			Users: []domain.User{{ID: "u2", Name: "Bo"}},
			Messages: []domain.Message{
				{ID: "1", Text: "HELLO world", CreatedAt: "2024-01-01T11:00:00Z", User: domain.User{ID: "u2", Name: "Bo"}},
			},
		},
	}
}

func TestChatStore_FindChat(t *testing.T) {
	req := require.New(t)
	s, err := NewChatStore(fixtureChats())
	req.NoError(err)

	chat, ok := s.FindChat("2")
	req.True(ok)
	req.Equal("2", chat.ID)

	_, ok = s.FindChat("999")
	req.False(ok)
}

func TestChatStore_AppendChat_RejectsMalformed(t *testing.T) {
	req := require.New(t)
	s, err := NewChatStore(nil)
	req.NoError(err)

	err = s.AppendChat(domain.Chat{})
	req.ErrorIs(err, errors.ErrMalformedChat)
	req.Empty(s.AllChats())
}

func TestChatStore_CreateChat_SequentialIDs(t *testing.T) {
	req := require.New(t)
	s, err := NewChatStore(fixtureChats())
	req.NoError(err)

	chat := s.CreateChat([]domain.User{{ID: "u1", Name: "Ana"}})
	req.Equal("3", chat.ID)
	req.Empty(chat.Messages)

	chat = s.CreateChat(nil)
	req.Equal("4", chat.ID)
}

func TestChatStore_AppendMessage(t *testing.T) {
	req := require.New(t)
	s, err := NewChatStore(fixtureChats())
	req.NoError(err)

	at := time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC)
	msg, err := s.AppendMessage("1", domain.User{ID: "u1", Name: "Ana"}, "hi", at)
	req.NoError(err)
	req.Equal("2", msg.ID)
	req.Equal("2024-02-01T12:30:00Z", msg.CreatedAt)

	// Only the target chat grew; message ids stay scoped per chat.
	chat1, _ := s.FindChat("1")
	chat2, _ := s.FindChat("2")
	req.Len(chat1.Messages, 2)
	req.Len(chat2.Messages, 1)
	req.Equal("1", chat2.Messages[0].ID)

	_, err = s.AppendMessage("999", domain.User{ID: "u1", Name: "Ana"}, "hi", at)
	req.ErrorIs(err, errors.ErrChatNotFound)
}

func TestChatStore_SnapshotsAreDetached(t *testing.T) {
	req := require.New(t)
	s, err := NewChatStore(fixtureChats())
	req.NoError(err)

	before, _ := s.FindChat("1")
	_, err = s.AppendMessage("1", domain.User{ID: "u1", Name: "Ana"}, "later", time.Now())
	req.NoError(err)
	req.Len(before.Messages, 1)
}

func Test_Concurrent_Mutations_Never_Duplicate_IDs(t *testing.T) {
	req := require.New(t)
	s, err := NewChatStore(fixtureChats())
	req.NoError(err)

	const n = 64
	var wg sync.WaitGroup
	var mu sync.Mutex
	chatIDs := make(map[string]int)
	messageIDs := make(map[string]int)

	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			chat := s.CreateChat([]domain.User{{ID: "u1", Name: "Ana"}})
			mu.Lock()
			chatIDs[chat.ID]++
			mu.Unlock()
		}()
		go func(i int) {
			defer wg.Done()
			msg, err := s.AppendMessage("1", domain.User{ID: "u1", Name: "Ana"}, fmt.Sprintf("msg %d", i), time.Now())
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			messageIDs[msg.ID]++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	req.Len(chatIDs, n)
	for id, count := range chatIDs {
		req.Equalf(1, count, "chat id %s minted twice", id)
	}
	req.Len(messageIDs, n)
	for id, count := range messageIDs {
		req.Equalf(1, count, "message id %s minted twice", id)
	}
}
