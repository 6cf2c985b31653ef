// Package internal carries operational helpers that are not part of the
// public API surface, currently the Badger dataset inspector.
package internal

import (
	"chatgraph/domain"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/shirou/gopsutil/process"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key          string
	ChatID       string
	Participants string
	Messages     int
	Preview      string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer exposes the Badger dataset as an HTML table on
// /inspect. It is read-only and meant for local troubleshooting, not for
// production exposure.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "chat:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}
		for k, v := range processStats() {
			data.Stats[k] = v
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, chatRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("localhost:%d", port), mux)
	}()
}

// chatRow decodes a stored chat into a display row; undecodable values
// still get a raw row so broken data stays visible.
func chatRow(key string, val []byte) InspectRow {
	row := InspectRow{Key: key, ChatID: "?"}

	var chat domain.Chat
	if err := json.Unmarshal(val, &chat); err != nil {
		row.Preview = string(val)
		return row
	}

	names := make([]string, 0, len(chat.Users))
	for _, u := range chat.Users {
		names = append(names, u.Name)
	}
	row.ChatID = chat.ID
	row.Participants = strings.Join(names, ", ")
	row.Messages = len(chat.Messages)
	if len(chat.Messages) > 0 {
		row.Preview = chat.Messages[len(chat.Messages)-1].Text
	}
	return row
}

// processStats reports the serving process's memory footprint.
func processStats() map[string]any {
	stats := make(map[string]any)
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return stats
	}
	if mem, err := p.MemoryInfo(); err == nil {
		stats["RSS (MiB)"] = mem.RSS / 1024 / 1024
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats["CPU %"] = fmt.Sprintf("%.1f", cpu)
	}
	return stats
}
