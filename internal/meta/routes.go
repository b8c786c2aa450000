package meta

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/stats/{ano}", h.Stats)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/progresso", h.UpdateProgresso)
	r.Delete("/{id}", h.Delete)

	r.Get("/{metaId}/submetas", h.ListSubmetas)
	r.Post("/{metaId}/submetas", h.CreateSubmeta)
	r.Put("/{metaId}/submetas/{id}", h.UpdateSubmeta)
	r.Patch("/{metaId}/submetas/{id}/toggle", h.ToggleSubmeta)
	r.Delete("/{metaId}/submetas/{id}", h.DeleteSubmeta)

	r.Get("/{metaId}/atualizacoes", h.ListAtualizacoes)

	return r
}
