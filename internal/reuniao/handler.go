package reuniao

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
	f := Filters{Mes: r.URL.Query().Get("mes")}
	if raw := r.URL.Query().Get("servico_id"); raw != "" {
		f.ServicoID, _ = strconv.Atoi(raw)
	}

	reunioes, err := h.service.List(r.Context(), f)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, reunioes)
}

func (h *Handler) ListByServico(w http.ResponseWriter, r *http.Request) {
	servicoID, err := strconv.Atoi(chi.URLParam(r, "servico_id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	reunioes, err := h.service.ListByServico(r.Context(), servicoID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, reunioes)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto ReuniaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	re, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusCreated, re)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var dto ReuniaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	re, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, re)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "Reunião removida com sucesso"})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrReuniaoNotFound) {
		config.Error(w, http.StatusNotFound, ErrReuniaoNotFound.Error())
		return
	}
	config.Error(w, http.StatusInternalServerError, err.Error())
}
