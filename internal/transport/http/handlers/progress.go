package handlers

import (
	"net/http"
	"time"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
)

type dayStatsResponse struct {
	Date        string  `json:"date"`
	Max1RM      float64 `json:"max_1rm"`
	TotalVolume float64 `json:"total_volume"`
	MaxWeight   float64 `json:"max_weight"`
	IsPRDay     bool    `json:"is_pr_day"`
}

type balanceResponse struct {
	Date        string  `json:"date"`
	Intake      float64 `json:"intake"`
	BMR         float64 `json:"bmr"`
	WorkoutBurn float64 `json:"workout_burn"`
	TotalBurned float64 `json:"total_burned"`
	Balance     float64 `json:"balance"`
	Status      string  `json:"status"`
	Verdict     string  `json:"verdict"`
}

func (h *Handlers) ExerciseProgress(w http.ResponseWriter, r *http.Request) {
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

	timeline, err := h.Service.TimelineProgress(r.Context(), id, exerciseID, from, to)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]dayStatsResponse, 0, len(timeline))
	for _, day := range timeline {
		out = append(out, dayStatsResponse{
			Date:        day.Date.Format(time.DateOnly),
			Max1RM:      day.Max1RM,
			TotalVolume: day.TotalVolume,
			MaxWeight:   day.MaxWeight,
			IsPRDay:     day.IsPRDay,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) EnergyBalance(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.Service.DailyEnergyBalance(r.Context(), id, day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceFromModel(report))
}

func balanceFromModel(report *models.BalanceReport) balanceResponse {
	return balanceResponse{
		Date:        report.Date.Format(time.DateOnly),
		Intake:      report.Intake,
		BMR:         report.BMR,
		WorkoutBurn: report.WorkoutBurn,
		TotalBurned: report.TotalBurned,
		Balance:     report.Balance,
		Status:      report.Status.String(),
		Verdict:     report.Verdict,
	}
}
