package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/thought-diary/internal/http/errors"
	"github.com/pribylovaa/thought-diary/internal/http/middleware"
)

func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Message: "User created successfully",
		User:    userFromModel(user),
	})
}

func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, tokens, err := h.svc.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         userFromModel(user),
		ExpiresIn:    int64(h.svc.ExpiryWindows().Access.Seconds()),
	})
}

// RefreshToken ожидает refresh-токен в Authorization: Bearer.
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrMissingToken)
		return
	}

	access, _, err := h.svc.RefreshAccessToken(r.Context(), token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{
		AccessToken: access,
		ExpiresIn:   int64(h.svc.ExpiryWindows().Access.Seconds()),
	})
}

// Logout отзывает текущий access-токен и, опционально, refresh-токен из тела.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, errNoClaims)
		return
	}

	var in logoutRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.Logout(r.Context(), claims, in.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Successfully logged out"})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, errNoClaims)
		return
	}

	user, err := h.svc.UserByID(r.Context(), claims.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}
