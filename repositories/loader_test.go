package repositories

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chats.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDatasetLoader_LoadFile(t *testing.T) {
	loader := NewDatasetLoader(slog.Default())

	t.Run("loads a well-formed dataset in order", func(t *testing.T) {
		req := require.New(t)
		path := writeDataset(t, `[
			{"id":"1","users":[{"id":"u1","name":"Ana"}],"messages":[
				{"id":"1","text":"Hello there","createdAt":"2024-01-01T10:00:00Z","user":{"id":"u1","name":"Ana"}}
			]},
			{"id":"2","users":[{"id":"u2","name":"Bo"}],"messages":[]}
		]`)

		chats, err := loader.LoadFile(path)
		req.NoError(err)
		req.Len(chats, 2)
		req.Equal("1", chats[0].ID)
		req.Equal("Ana", chats[0].Users[0].Name)
		req.Equal("2", chats[1].ID)
	})

	t.Run("rejects a chat without an id", func(t *testing.T) {
		path := writeDataset(t, `[{"users":[{"id":"u1","name":"Ana"}],"messages":[]}]`)
		_, err := loader.LoadFile(path)
		require.Error(t, err)
	})

	t.Run("rejects a user without a name", func(t *testing.T) {
		path := writeDataset(t, `[{"id":"1","users":[{"id":"u1"}],"messages":[]}]`)
		_, err := loader.LoadFile(path)
		require.Error(t, err)
	})

	t.Run("rejects a message without text", func(t *testing.T) {
		path := writeDataset(t, `[{"id":"1","users":[{"id":"u1","name":"Ana"}],"messages":[
			{"id":"1","createdAt":"2024-01-01T10:00:00Z","user":{"id":"u1","name":"Ana"}}
		]}]`)
		_, err := loader.LoadFile(path)
		require.Error(t, err)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		path := writeDataset(t, `{"not":"a list"`)
		_, err := loader.LoadFile(path)
		require.Error(t, err)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}
