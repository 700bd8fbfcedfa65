package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router serving callbackPath.
func (h *Handler) Init(callbackPath string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get(callbackPath, h.callback)

	// Other methods on the callback path look like any unknown path.
	router.MethodNotAllowed(http.NotFound)

	return router
}
