package graph

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// Handler serves the schema over HTTP with GraphiQL enabled. Every request
// gets a correlation id so concurrent requests can be told apart in the logs.
func Handler(log *slog.Logger, schema graphql.Schema) http.Handler {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		h.ServeHTTP(w, r)
		log.Debug("graphql request served",
			"request_id", requestID,
			"method", r.Method,
			"duration", time.Since(start),
		)
	})
}
