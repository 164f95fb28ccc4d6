package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires every endpoint of the scheduling service.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/statistics", h.Statistics)

	r.Route("/messages", func(r chi.Router) {
		r.Post("/", h.PostMessage)
		r.Get("/", h.GetMessages)
		r.Get("/search", h.SearchMessages)
		r.Get("/user/{email}", h.GetMessagesByUser)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.ListUsers)
	})

	r.Post("/schedule", h.RunScheduling)

	r.Route("/meetings", func(r chi.Router) {
		r.Get("/", h.ListMeetings)
		r.Get("/{id}", h.GetMeeting)
		r.Put("/{id}/status", h.UpdateMeetingStatus)
	})

	return r
}
