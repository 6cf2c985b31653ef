// Package domain contains core concepts of the chat store.
// This file defines the Chat aggregate.
package domain

// Chat owns an ordered participant list and an ordered, append-only message
// log. The Chat ID is sequential and unique across the whole store. Users
// keep their insertion order and are not deduplicated; Messages keep
// chronological (append) order.
type Chat struct {
	ID       string    `json:"id" validate:"required"`
	Users    []User    `json:"users" validate:"dive"`
	Messages []Message `json:"messages" validate:"dive"`
}

// Clone returns a copy whose slices are detached from the receiver, so the
// caller can hold it without observing later in-place mutations.
func (c Chat) Clone() Chat {
	out := Chat{ID: c.ID}
	if c.Users != nil {
		out.Users = make([]User, len(c.Users))
		copy(out.Users, c.Users)
	}
	if c.Messages != nil {
		out.Messages = make([]Message, len(c.Messages))
		copy(out.Messages, c.Messages)
	}
	return out
}
