package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

type logMeasurementRequest struct {
	WeightKg   float64   `json:"weight_kg"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
	Note       string    `json:"note,omitempty"`
	MeasuredAt time.Time `json:"measured_at,omitempty"`
}

type measurementResponse struct {
	ID         string    `json:"id"`
	WeightKg   float64   `json:"weight_kg"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
	Note       string    `json:"note,omitempty"`
	MeasuredAt time.Time `json:"measured_at"`
}

func measurementFromModel(m *models.Measurement) measurementResponse {
	return measurementResponse{
		ID:         m.ID.String(),
		WeightKg:   m.WeightKg,
		BodyFatPct: m.BodyFatPct,
		Note:       m.Note,
		MeasuredAt: m.MeasuredAt,
	}
}

func (h *Handlers) LogMeasurement(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in logMeasurementRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	m, err := h.Service.LogMeasurement(r.Context(), id, in.WeightKg, in.BodyFatPct, in.Note, in.MeasuredAt)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, measurementFromModel(m))
}

func (h *Handlers) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	from, err := queryTime(r, "from")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	to, err := queryTime(r, "to")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	// Дефолтное окно: последние 90 дней.
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -90)
	end := now.Add(time.Hour)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	measurements, err := h.Service.MeasurementsByRange(r.Context(), id, start, end)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]measurementResponse, 0, len(measurements))
	for i := range measurements {
		out = append(out, measurementFromModel(&measurements[i]))
	}

	writeJSON(w, http.StatusOK, out)
}
