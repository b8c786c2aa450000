package meta

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
	f := Filters{
		Categoria: r.URL.Query().Get("categoria"),
		Status:    r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("ano"); raw != "" {
		f.Ano, _ = strconv.Atoi(raw)
	}

	metas, err := h.service.List(r.Context(), f)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, metas)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ano := AnoPadrao
	if raw := chi.URLParam(r, "ano"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			config.Error(w, http.StatusBadRequest, "Ano inválido")
			return
		}
		ano = parsed
	}

	stats, err := h.service.Stats(r.Context(), ano)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	m, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateMetaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	m, err := h.service.Create(r.Context(), dto)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusCreated, m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateMetaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	m, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) UpdateProgresso(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	var dto ProgressoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	m, err := h.service.UpdateProgresso(r.Context(), id, dto)
	if err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "Meta removida com sucesso"})
}

func (h *Handler) ListSubmetas(w http.ResponseWriter, r *http.Request) {
	metaID, ok := h.idParam(w, r, "metaId")
	if !ok {
		return
	}

	submetas, err := h.service.ListSubmetas(r.Context(), metaID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, submetas)
}

func (h *Handler) CreateSubmeta(w http.ResponseWriter, r *http.Request) {
	metaID, ok := h.idParam(w, r, "metaId")
	if !ok {
		return
	}

	var dto CreateSubmetaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	sub, err := h.service.CreateSubmeta(r.Context(), metaID, dto)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusCreated, sub)
}

func (h *Handler) UpdateSubmeta(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	var dto UpdateSubmetaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	sub, err := h.service.UpdateSubmeta(r.Context(), id, dto)
	if err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, sub)
}

func (h *Handler) ToggleSubmeta(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	sub, err := h.service.ToggleSubmeta(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, sub)
}

func (h *Handler) DeleteSubmeta(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSubmeta(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "Submeta removida com sucesso"})
}

func (h *Handler) ListAtualizacoes(w http.ResponseWriter, r *http.Request) {
	metaID, ok := h.idParam(w, r, "metaId")
	if !ok {
		return
	}

	atualizacoes, err := h.service.ListAtualizacoes(r.Context(), metaID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	config.JSON(w, http.StatusOK, atualizacoes)
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMetaNotFound):
		config.Error(w, http.StatusNotFound, ErrMetaNotFound.Error())
	case errors.Is(err, ErrSubmetaNotFound):
		config.Error(w, http.StatusNotFound, ErrSubmetaNotFound.Error())
	default:
		config.Error(w, http.StatusInternalServerError, err.Error())
	}
}
