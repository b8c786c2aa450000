package dashboard

import (
	"net/http"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, stats)
}
