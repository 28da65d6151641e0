package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/thought-diary/internal/http/errors"
	"github.com/pribylovaa/thought-diary/internal/http/middleware"
	"github.com/pribylovaa/thought-diary/internal/service"
	"github.com/pribylovaa/thought-diary/internal/validation"
)

const msgNotInteger = "Not a valid integer."

func (h *Handlers) ListDiaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	page, err := queryInt(r, "page", service.DefaultPage)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	perPage, err := queryInt(r, "per_page", service.DefaultPerPage)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.svc.ListDiaries(r.Context(), userID, page, perPage)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageFromModel(p))
}

func (h *Handlers) CreateDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in contentRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, err := h.svc.CreateDiary(r.Context(), userID, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, diaryFromModel(d))
}

func (h *Handlers) GetDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, ok := diaryID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.GetDiary(r.Context(), userID, id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, diaryFromModel(d))
}

func (h *Handlers) UpdateDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, ok := diaryID(w, r)
	if !ok {
		return
	}

	var in contentRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	d, err := h.svc.UpdateDiary(r.Context(), userID, id, in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, diaryFromModel(d))
}

func (h *Handlers) DeleteDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, ok := diaryID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteDiary(r.Context(), userID, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Thought diary deleted successfully"})
}

func (h *Handlers) DiaryStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	st, err := h.svc.DiaryStats(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsFromModel(st))
}

// userID достаёт пользователя из claims, положенных RequireToken.
func (h *Handlers) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, errNoClaims)
		return 0, false
	}

	return claims.UserID, true
}

// diaryID разбирает {id}; нечисловой id — это несуществующая запись.
func diaryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.WriteError(w, r, service.ErrDiaryNotFound)
		return 0, false
	}

	return id, true
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewError(name, msgNotInteger)
	}

	return n, nil
}
