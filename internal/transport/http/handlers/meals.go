package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

type logMealRequest struct {
	Description string    `json:"description"`
	EatenAt     time.Time `json:"eaten_at,omitempty"`
}

type mealResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FatG        float64   `json:"fat_g"`
	EatenAt     time.Time `json:"eaten_at"`
}

func mealFromModel(m *models.MealLog) mealResponse {
	return mealResponse{
		ID:          m.ID.String(),
		Description: m.Description,
		Calories:    m.Calories,
		ProteinG:    m.ProteinG,
		CarbsG:      m.CarbsG,
		FatG:        m.FatG,
		EatenAt:     m.EatenAt,
	}
}

func (h *Handlers) LogMeal(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in logMealRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	meal, err := h.Service.LogMeal(r.Context(), id, in.Description, in.EatenAt)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mealFromModel(meal))
}

func (h *Handlers) ListMeals(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	day, err := queryDay(r, "date")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	meals, err := h.Service.MealsForDay(r.Context(), id, day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]mealResponse, 0, len(meals))
	for i := range meals {
		out = append(out, mealFromModel(&meals[i]))
	}

	writeJSON(w, http.StatusOK, out)
}
