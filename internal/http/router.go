package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wellspring-ai/internal/handlers"
	"wellspring-ai/internal/pipeline"
	"wellspring-ai/internal/profile"
	"wellspring-ai/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Registry   *profile.Registry
	Pipeline   *pipeline.Pipeline
	Store      vectorstore.Store
	Collection string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	profilesHandler := handlers.NewProfilesHandler(deps.Registry)
	relevanceHandler := handlers.NewRelevanceHandler(deps.Registry, deps.Pipeline)
	searchHandler := handlers.NewSearchHandler(deps.Registry, deps.Pipeline)
	rerankHandler := handlers.NewRerankHandler(deps.Registry, deps.Pipeline)
	chatHandler := handlers.NewChatHandler(deps.Registry, deps.Pipeline)
	renderHandler := handlers.NewRenderHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/chatbots", profilesHandler.List)
		r.Route("/chatbots/{chatbotID}", func(r chi.Router) {
			r.Get("/", profilesHandler.Get)
			r.Method(http.MethodPost, "/relevance", relevanceHandler)
			r.Method(http.MethodPost, "/search", searchHandler)
			r.Method(http.MethodPost, "/rerank", rerankHandler)
			r.Method(http.MethodPost, "/chat", chatHandler)
			r.Method(http.MethodPost, "/render", renderHandler)
		})
	})

	r.Method(http.MethodGet, "/healthz", handlers.NewHealthHandler(deps.Store, deps.Collection))

	return r
}
