package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/service"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

type logSetRequest struct {
	WeightKg    float64   `json:"weight_kg"`
	Reps        uint32    `json:"reps"`
	RPE         *float64  `json:"rpe,omitempty"`
	PerformedAt time.Time `json:"performed_at,omitempty"`
}

type setResponse struct {
	ID           string    `json:"id"`
	ExerciseID   string    `json:"exercise_id"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         uint32    `json:"reps"`
	RPE          *float64  `json:"rpe,omitempty"`
	Estimated1RM float64   `json:"estimated_1rm"`
	Volume       float64   `json:"volume"`
	PerformedAt  time.Time `json:"performed_at"`
}

func setFromModel(s *models.LoggedSet, oneRM, volume float64) setResponse {
	return setResponse{
		ID:           s.ID.String(),
		ExerciseID:   s.ExerciseID.String(),
		WeightKg:     s.WeightKg,
		Reps:         s.Reps,
		RPE:          s.RPE,
		Estimated1RM: oneRM,
		Volume:       volume,
		PerformedAt:  s.PerformedAt,
	}
}

func (h *Handlers) LogSet(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	exerciseID, err := pathID(r, "exercise_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in logSetRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	set, err := h.Service.LogSet(r.Context(), id, exerciseID, in.WeightKg, in.Reps, in.RPE, in.PerformedAt)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, setFromModel(set,
		service.EstimateOneRepMax(set.WeightKg, set.Reps),
		service.ComputeVolume(set.WeightKg, set.Reps),
	))
}

func (h *Handlers) ListSets(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	exerciseID, err := pathID(r, "exercise_id")
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

	sets, err := h.Service.SetsByExercise(r.Context(), id, exerciseID, from, to)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]setResponse, 0, len(sets))
	for i := range sets {
		s := &sets[i]
		out = append(out, setFromModel(s,
			service.EstimateOneRepMax(s.WeightKg, s.Reps),
			service.ComputeVolume(s.WeightKg, s.Reps),
		))
	}

	writeJSON(w, http.StatusOK, out)
}
