package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
	"github.com/DuongAty/workout-planner/internal/transport/http/middleware"
)

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type tokenPairResponse struct {
	AccountID       string    `json:"account_id"`
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

func tokenPairFromModel(pair *models.TokenPair, accountID string) tokenPairResponse {
	return tokenPairResponse{
		AccountID:       accountID,
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt,
	}
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var in signUpRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	pair, id, err := h.Service.SignUp(r.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenPairFromModel(pair, id.String()))
}

func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var in signInRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	pair, id, err := h.Service.SignIn(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairFromModel(pair, id.String()))
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	if in.AccessToken == "" || in.RefreshToken == "" {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	pair, id, err := h.Service.RefreshTokens(r.Context(), in.RefreshToken, in.AccessToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairFromModel(pair, id.String()))
}

func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	token := middleware.AccessTokenFrom(r.Context())

	if err := h.Service.SignOut(r.Context(), id, token); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
