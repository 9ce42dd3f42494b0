package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/naseer617/ta-member-service/internal/api/handlers"
	mw "github.com/naseer617/ta-member-service/internal/api/middleware"
)

type Dependencies struct {
	MembersHandler *handlers.MembersHandler
	HealthHandler  *handlers.HealthHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)

	r.Route("/members", func(mr chi.Router) {
		mr.Post("/", dep.MembersHandler.Create)
		mr.Get("/", dep.MembersHandler.List)
		mr.Delete("/", dep.MembersHandler.DeleteAll)
		mr.Delete("/{id}", dep.MembersHandler.DeleteOne)
	})

	return r
}
