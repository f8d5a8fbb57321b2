package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all tip endpoints onto the given router under the
// /tip prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tip", func(r chi.Router) {
		r.Get("/calculate", h.CalculateQuery)
		r.Post("/calculate", h.Calculate)
		r.Get("/presets", h.Presets)
	})
}
