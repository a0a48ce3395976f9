package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matchlive/commentary-service/internal/broadcast"
	"github.com/matchlive/commentary-service/internal/service"
	"github.com/matchlive/commentary-service/internal/store"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(pgStore *store.PostgresStore, matches *service.MatchService, feed *service.CommentaryFeed, hub *broadcast.Hub, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// Handlers
	matchHandler := NewMatchHandler(matches)
	commentaryHandler := NewCommentaryHandler(feed)
	streamHandler := NewStreamHandler(hub, logger)
	statsHandler := NewStatsHandler(pgStore, hub)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandler())
		r.Get("/stats", statsHandler.Stats)

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchHandler.Create)
			r.Get("/", matchHandler.List)

			r.Route("/{matchID}", func(r chi.Router) {
				r.Post("/commentary", commentaryHandler.Create)
				r.Get("/commentary", commentaryHandler.List)
				r.Get("/stream", streamHandler.Stream)
			})
		})
	})

	return r
}
