package store

import (
	"chatgraph/domain"

	"github.com/samber/lo"
)

// UserRegistry answers canonical-identity lookups: one authoritative User
// per id, no matter how many chats embed a copy. It is populated once from
// the loaded store — the first occurrence of an id in store order wins, which
// matches the resolution the embedded copies would otherwise produce — and
// never changes afterwards, since no operation creates or renames users.
type UserRegistry struct {
	store *ChatStore
	users map[string]domain.User
}

// NewUserRegistry indexes every participant currently in the store.
func NewUserRegistry(s *ChatStore) *UserRegistry {
	users := make(map[string]domain.User)
	for _, chat := range s.AllChats() {
		for _, user := range chat.Users {
			if _, seen := users[user.ID]; !seen {
				users[user.ID] = user
			}
		}
	}
	return &UserRegistry{store: s, users: users}
}

// Resolve returns the canonical User for an id. Absence is a legitimate
// result, not an error; callers decide whether it is fatal.
func (r *UserRegistry) Resolve(id string) (domain.User, bool) {
	user, ok := r.users[id]
	return user, ok
}

// ChatsFor lists the chats whose participant sequence contains the id, in
// store order. Reads the live store, so chats created after load are
// included. Returns an empty slice when none match.
func (r *UserRegistry) ChatsFor(id string) []domain.Chat {
	return lo.Filter(r.store.AllChats(), func(chat domain.Chat, _ int) bool {
		return lo.ContainsBy(chat.Users, func(user domain.User) bool {
			return user.ID == id
		})
	})
}
