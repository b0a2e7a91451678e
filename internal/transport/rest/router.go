package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/glossary-backend/internal/config"
	"github.com/heartmarshall/glossary-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Glossary  *GlossaryHandler
	Changelog *ChangelogHandler
	Health    *HealthHandler
	Logger    *slog.Logger
	CORS      config.CORSConfig
}

// NewRouter builds the full HTTP handler: routes plus the middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /entries", deps.Glossary.List)
	mux.HandleFunc("POST /entries", deps.Glossary.Create)
	mux.HandleFunc("PUT /entries", deps.Glossary.Update)
	mux.HandleFunc("DELETE /entries", deps.Glossary.Delete)
	mux.HandleFunc("GET /entries/export", deps.Glossary.Export)

	mux.HandleFunc("GET /changelog", deps.Changelog.List)

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Logger(deps.Logger),
	)

	return chain(mux)
}
