package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

type profileResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Name      string   `json:"name,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	WeightKg  *float64 `json:"weight_kg,omitempty"`
	HeightCm  *float64 `json:"height_cm,omitempty"`
	Age       *uint32  `json:"age,omitempty"`
	Gender    string   `json:"gender"`
	Goal      string   `json:"goal"`
	CreatedAt string   `json:"created_at"`
}

func profileFromModel(a *models.Account) profileResponse {
	return profileResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		Name:      a.Name,
		AvatarURL: a.AvatarURL,
		WeightKg:  a.WeightKg,
		HeightCm:  a.HeightCm,
		Age:       a.Age,
		Gender:    a.Gender.String(),
		Goal:      a.Goal.String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

type updateProfileRequest struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	Age      *uint32  `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	Goal     *string  `json:"goal,omitempty"`
}

type avatarPresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type avatarPresignResponse struct {
	UploadURL      string            `json:"upload_url"`
	AvatarKey      string            `json:"avatar_key"`
	ExpiresSeconds int64             `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

type avatarConfirmRequest struct {
	AvatarKey string `json:"avatar_key"`
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	account, err := h.Service.Profile(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileFromModel(account))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	update := storage.AccountUpdate{
		Name:     in.Name,
		Email:    in.Email,
		WeightKg: in.WeightKg,
		HeightCm: in.HeightCm,
		Age:      in.Age,
	}
	if in.Gender != nil {
		g := models.ParseGender(*in.Gender)
		update.Gender = &g
	}
	if in.Goal != nil {
		goal := models.ParseGoal(*in.Goal)
		update.Goal = &goal
	}

	account, err := h.Service.UpdateProfile(r.Context(), id, update)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileFromModel(account))
}

func (h *Handlers) AvatarPresign(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in avatarPresignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	info, err := h.Service.AvatarUploadURL(r.Context(), id, in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, avatarPresignResponse{
		UploadURL:      info.UploadURL,
		AvatarKey:      info.AvatarKey,
		ExpiresSeconds: int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	})
}

func (h *Handlers) AvatarConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in avatarConfirmRequest
	if err := decodeStrict(r, &in); err != nil || in.AvatarKey == "" {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	account, err := h.Service.ConfirmAvatarUpload(r.Context(), id, in.AvatarKey)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileFromModel(account))
}
