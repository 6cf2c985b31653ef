// Package domain contains core concepts of the chat store.
// This file defines Message records and related rules.
// Messages are immutable once appended to a chat.
package domain

// Message is an immutable chat entry. Its ID is sequential and unique only
// within the owning Chat (scoped numbering), so equal ids across two chats
// are expected. CreatedAt is an ISO-8601 string assigned at creation time.
type Message struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text" validate:"required"`
	CreatedAt string `json:"createdAt" validate:"required"`
	User      User   `json:"user"`
}
