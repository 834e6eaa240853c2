package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

type createExerciseRequest struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group,omitempty"`
	Position    int32  `json:"position"`
}

type exerciseResponse struct {
	ID          string    `json:"id"`
	WorkoutID   string    `json:"workout_id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscle_group,omitempty"`
	Position    int32     `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

func exerciseFromModel(e *models.Exercise) exerciseResponse {
	return exerciseResponse{
		ID:          e.ID.String(),
		WorkoutID:   e.WorkoutID.String(),
		Name:        e.Name,
		MuscleGroup: e.MuscleGroup,
		Position:    e.Position,
		CreatedAt:   e.CreatedAt,
	}
}

func (h *Handlers) CreateExercise(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	workoutID, err := pathID(r, "workout_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createExerciseRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	exercise, err := h.Service.CreateExercise(r.Context(), id, workoutID, in.Name, in.MuscleGroup, in.Position)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, exerciseFromModel(exercise))
}

func (h *Handlers) ListExercises(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	workoutID, err := pathID(r, "workout_id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	exercises, err := h.Service.ExercisesByWorkout(r.Context(), id, workoutID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]exerciseResponse, 0, len(exercises))
	for i := range exercises {
		out = append(out, exerciseFromModel(&exercises[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	exerciseID, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteExercise(r.Context(), id, exerciseID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
