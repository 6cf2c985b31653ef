package store

import (
	"chatgraph/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRegistry_Resolve_FirstOccurrenceWins(t *testing.T) {
	req := require.New(t)
	chats := []domain.Chat{
		{ID: "1", Users: []domain.User{{ID: "u1", Name: "Ana"}}},
		// Conflicting copy of u1 in a later chat must not win.
		{ID: "2", Users: []domain.User{{ID: "u1", Name: "Anna"}, {ID: "u2", Name: "Bo"}}},
	}
	s, err := NewChatStore(chats)
	req.NoError(err)
	registry := NewUserRegistry(s)

	user, ok := registry.Resolve("u1")
	req.True(ok)
	req.Equal("Ana", user.Name)

	_, ok = registry.Resolve("u999")
	req.False(ok)
}

func TestUserRegistry_ChatsFor(t *testing.T) {
	req := require.New(t)
	s, err := NewChatStore(fixtureChats())
	req.NoError(err)
	registry := NewUserRegistry(s)

	chats := registry.ChatsFor("u1")
	req.Len(chats, 1)
	req.Equal("1", chats[0].ID)

	req.Empty(registry.ChatsFor("u999"))

	// Chats created after load are visible through the derived view.
	user, _ := registry.Resolve("u1")
	created := s.CreateChat([]domain.User{user})
	chats = registry.ChatsFor("u1")
	req.Len(chats, 2)
	req.Equal(created.ID, chats[1].ID)
}
