package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/DuongAty/workout-planner/internal/models"
)

// Интеграционные тесты репозиториев meal.go и measurement.go:
// вставка и диапазонные выборки [from, to) для дневника питания и замеров тела.

func seedMeal(t *testing.T, st *Storage, accountID uuid.UUID, desc string, calories float64, at time.Time) {
	t.Helper()
	m := &models.MealLog{
		ID:          uuid.New(),
		AccountID:   accountID,
		Description: desc,
		Calories:    calories,
		ProteinG:    30,
		CarbsG:      40,
		FatG:        10,
		EatenAt:     at,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, st.SaveMeal(context.Background(), m))
}

// TestIntegration_MealsByRange_OrderAndBounds — приёмы пищи за день:
// сортировка по eaten_at, правая граница исключается, чужие записи не видны.
func TestIntegration_MealsByRange_OrderAndBounds(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := seedAccount(t, st, "eater_1")
	other := seedAccount(t, st, "eater_2")

	day := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	seedMeal(t, st, owner, "dinner", 700, day.Add(19*time.Hour))
	seedMeal(t, st, owner, "breakfast", 500, day.Add(8*time.Hour))
	seedMeal(t, st, owner, "next day", 400, day.Add(24*time.Hour))
	seedMeal(t, st, other, "not mine", 999, day.Add(12*time.Hour))

	got, err := st.MealsByRange(context.Background(), owner, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "breakfast", got[0].Description)
	require.Equal(t, "dinner", got[1].Description)
	require.Equal(t, 500.0, got[0].Calories)
	require.Equal(t, 30.0, got[0].ProteinG)
}

// TestIntegration_Measurements_SaveAndRange — замеры тела:
// опциональный body_fat_pct хранится как NULL, выборка отсортирована по measured_at.
func TestIntegration_Measurements_SaveAndRange(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := seedAccount(t, st, "scale_1")
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	bodyFat := 18.5
	first := &models.Measurement{
		ID:         uuid.New(),
		AccountID:  owner,
		WeightKg:   81.2,
		BodyFatPct: &bodyFat,
		Note:       "morning",
		MeasuredAt: base,
		CreatedAt:  time.Now().UTC(),
	}
	second := &models.Measurement{
		ID:         uuid.New(),
		AccountID:  owner,
		WeightKg:   80.6,
		MeasuredAt: base.Add(7 * 24 * time.Hour),
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, st.SaveMeasurement(context.Background(), first))
	require.NoError(t, st.SaveMeasurement(context.Background(), second))

	got, err := st.MeasurementsByRange(context.Background(), owner, base, base.Add(30*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 81.2, got[0].WeightKg)
	require.NotNil(t, got[0].BodyFatPct)
	require.Equal(t, bodyFat, *got[0].BodyFatPct)
	require.Nil(t, got[1].BodyFatPct)
	require.Equal(t, "morning", got[0].Note)
}
