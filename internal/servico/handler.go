package servico

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/igrejamossoro/servicos-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	servicos, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, servicos)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	sv, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, sv)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto ServicoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	sv, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusCreated, sv)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var dto ServicoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	sv, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, sv)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "Serviço removido com sucesso"})
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrServicoNotFound) {
		config.Error(w, http.StatusNotFound, ErrServicoNotFound.Error())
		return
	}
	config.Error(w, http.StatusInternalServerError, err.Error())
}
