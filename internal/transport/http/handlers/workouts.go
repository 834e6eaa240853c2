package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

type createWorkoutRequest struct {
	Title             string    `json:"title"`
	Notes             string    `json:"notes,omitempty"`
	ScheduledAt       time.Time `json:"scheduled_at"`
	EstimatedCalories float64   `json:"estimated_calories,omitempty"`
}

type updateWorkoutRequest struct {
	Title             *string    `json:"title,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	ScheduledAt       *time.Time `json:"scheduled_at,omitempty"`
	EstimatedCalories *float64   `json:"estimated_calories,omitempty"`
}

type generateWorkoutRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

type workoutResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Notes             string    `json:"notes,omitempty"`
	ScheduledAt       time.Time `json:"scheduled_at"`
	EstimatedCalories float64   `json:"estimated_calories"`
	CreatedAt         time.Time `json:"created_at"`
}

type generatedWorkoutResponse struct {
	Workout   workoutResponse    `json:"workout"`
	Exercises []exerciseResponse `json:"exercises"`
}

func workoutFromModel(wk *models.Workout) workoutResponse {
	return workoutResponse{
		ID:                wk.ID.String(),
		Title:             wk.Title,
		Notes:             wk.Notes,
		ScheduledAt:       wk.ScheduledAt,
		EstimatedCalories: wk.EstimatedCalories,
		CreatedAt:         wk.CreatedAt,
	}
}

func (h *Handlers) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in createWorkoutRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	workout, err := h.Service.CreateWorkout(r.Context(), id, in.Title, in.Notes, in.ScheduledAt, in.EstimatedCalories)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, workoutFromModel(workout))
}

func (h *Handlers) WorkoutByID(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	workoutID, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	workout, err := h.Service.WorkoutByID(r.Context(), id, workoutID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, workoutFromModel(workout))
}

func (h *Handlers) ListWorkouts(w http.ResponseWriter, r *http.Request) {
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

	// Дефолтное окно: неделя назад — неделя вперёд.
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -7)
	end := now.AddDate(0, 0, 7)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	workouts, err := h.Service.WorkoutsByRange(r.Context(), id, start, end)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]workoutResponse, 0, len(workouts))
	for i := range workouts {
		out = append(out, workoutFromModel(&workouts[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	workoutID, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateWorkoutRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	workout, err := h.Service.UpdateWorkout(r.Context(), id, workoutID, storage.WorkoutUpdate{
		Title:             in.Title,
		Notes:             in.Notes,
		ScheduledAt:       in.ScheduledAt,
		EstimatedCalories: in.EstimatedCalories,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, workoutFromModel(workout))
}

func (h *Handlers) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	workoutID, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteWorkout(r.Context(), id, workoutID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) GenerateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in generateWorkoutRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	if in.ScheduledAt.IsZero() {
		in.ScheduledAt = time.Now().UTC()
	}

	workout, exercises, err := h.Service.GenerateWorkout(r.Context(), id, in.ScheduledAt)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := generatedWorkoutResponse{
		Workout:   workoutFromModel(workout),
		Exercises: make([]exerciseResponse, 0, len(exercises)),
	}
	for i := range exercises {
		out.Exercises = append(out.Exercises, exerciseFromModel(&exercises[i]))
	}

	writeJSON(w, http.StatusCreated, out)
}
