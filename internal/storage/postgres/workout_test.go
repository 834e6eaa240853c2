package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// Интеграционные тесты репозиториев workout.go, exercise.go и set.go:
// изоляция по аккаунту, диапазонные выборки, частичный апдейт и каскадное
// удаление упражнений/подходов на уровне БД.

// seedAccount — вставляет аккаунт и возвращает его ID.
func seedAccount(t *testing.T, st *Storage, username string) uuid.UUID {
	t.Helper()
	a := newTestAccount(username)
	require.NoError(t, st.SaveAccount(context.Background(), a))
	return a.ID
}

// seedWorkout — вставляет тренировку с заданным временем.
func seedWorkout(t *testing.T, st *Storage, accountID uuid.UUID, title string, at time.Time) *models.Workout {
	t.Helper()
	now := time.Now().UTC()
	w := &models.Workout{
		ID:                uuid.New(),
		AccountID:         accountID,
		Title:             title,
		ScheduledAt:       at,
		EstimatedCalories: 300,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, st.SaveWorkout(context.Background(), w))
	return w
}

// seedExercise — вставляет упражнение в тренировку.
func seedExercise(t *testing.T, st *Storage, accountID, workoutID uuid.UUID, name string, position int32) *models.Exercise {
	t.Helper()
	e := &models.Exercise{
		ID:        uuid.New(),
		WorkoutID: workoutID,
		AccountID: accountID,
		Name:      name,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.SaveExercise(context.Background(), e))
	return e
}

// seedSet — вставляет подход упражнения.
func seedSet(t *testing.T, st *Storage, accountID, exerciseID uuid.UUID, weight float64, reps uint32, at time.Time) {
	t.Helper()
	set := &models.LoggedSet{
		ID:          uuid.New(),
		ExerciseID:  exerciseID,
		AccountID:   accountID,
		WeightKg:    weight,
		Reps:        reps,
		PerformedAt: at,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, st.SaveSet(context.Background(), set))
}

// TestIntegration_Workout_CRUD_And_Isolation — happy-path CRUD тренировки
// и изоляция между аккаунтами: чужая тренировка не видна по ID.
func TestIntegration_Workout_CRUD_And_Isolation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := seedAccount(t, st, "owner_1")
	stranger := seedAccount(t, st, "stranger_1")

	w := seedWorkout(t, st, owner, "Leg day", time.Now().UTC().Add(24*time.Hour))

	got, err := st.WorkoutByID(context.Background(), owner, w.ID)
	require.NoError(t, err)
	require.Equal(t, "Leg day", got.Title)

	// Чужой аккаунт получает ErrNotFound, а не чужие данные.
	_, err = st.WorkoutByID(context.Background(), stranger, w.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	title := "Push day"
	calories := 450.0
	updated, err := st.UpdateWorkout(context.Background(), owner, w.ID, storage.WorkoutUpdate{
		Title:             &title,
		EstimatedCalories: &calories,
	})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, calories, updated.EstimatedCalories)

	// Апдейт чужим аккаунтом — ErrNotFound.
	_, err = st.UpdateWorkout(context.Background(), stranger, w.ID, storage.WorkoutUpdate{Title: &title})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.DeleteWorkout(context.Background(), owner, w.ID))

	err = st.DeleteWorkout(context.Background(), owner, w.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_WorkoutsByRange_HalfOpen — выборка по [from, to):
// левая граница включается, правая — нет; порядок по scheduled_at.
func TestIntegration_WorkoutsByRange_HalfOpen(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := seedAccount(t, st, "owner_2")
	base := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)

	seedWorkout(t, st, owner, "w1", base)
	seedWorkout(t, st, owner, "w2", base.Add(12*time.Hour))
	seedWorkout(t, st, owner, "w3", base.Add(24*time.Hour)) // == to, за границей

	got, err := st.WorkoutsByRange(context.Background(), owner, base, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "w1", got[0].Title)
	require.Equal(t, "w2", got[1].Title)
}

// TestIntegration_ScheduledBetween_AllAccounts — выборка для напоминаний
// не фильтрует по владельцу.
func TestIntegration_ScheduledBetween_AllAccounts(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	a := seedAccount(t, st, "owner_3")
	b := seedAccount(t, st, "owner_4")
	base := time.Date(2026, 8, 11, 7, 0, 0, 0, time.UTC)

	seedWorkout(t, st, a, "a-run", base)
	seedWorkout(t, st, b, "b-lift", base.Add(time.Hour))

	got, err := st.ScheduledBetween(context.Background(), base, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
}

// TestIntegration_Exercises_OrderAndCascade — упражнения возвращаются
// в порядке position; удаление тренировки каскадно удаляет упражнения и подходы.
func TestIntegration_Exercises_OrderAndCascade(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := seedAccount(t, st, "owner_5")
	w := seedWorkout(t, st, owner, "Full body", time.Now().UTC())

	squat := seedExercise(t, st, owner, w.ID, "Squat", 2)
	bench := seedExercise(t, st, owner, w.ID, "Bench press", 1)
	seedSet(t, st, owner, squat.ID, 100, 5, time.Now().UTC())

	got, err := st.ExercisesByWorkout(context.Background(), owner, w.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, bench.ID, got[0].ID)
	require.Equal(t, squat.ID, got[1].ID)

	require.NoError(t, st.DeleteWorkout(context.Background(), owner, w.ID))

	_, err = st.ExerciseByID(context.Background(), owner, squat.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	sets, err := st.SetsByExercise(context.Background(), owner, squat.ID, nil, nil)
	require.NoError(t, err)
	require.Empty(t, sets)
}

// TestIntegration_SetsByExercise_OrderAndRange — подходы сортируются
// по performed_at; опциональные from/to задают полуинтервал [from, to).
func TestIntegration_SetsByExercise_OrderAndRange(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := seedAccount(t, st, "owner_6")
	w := seedWorkout(t, st, owner, "Pull day", time.Now().UTC())
	e := seedExercise(t, st, owner, w.ID, "Deadlift", 1)

	base := time.Date(2026, 8, 12, 10, 0, 0, 0, time.UTC)
	seedSet(t, st, owner, e.ID, 140, 3, base.Add(2*time.Hour))
	seedSet(t, st, owner, e.ID, 120, 5, base)
	seedSet(t, st, owner, e.ID, 130, 4, base.Add(time.Hour))

	all, err := st.SetsByExercise(context.Background(), owner, e.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, 120.0, all[0].WeightKg)
	require.Equal(t, 130.0, all[1].WeightKg)
	require.Equal(t, 140.0, all[2].WeightKg)

	from := base.Add(30 * time.Minute)
	to := base.Add(2 * time.Hour) // правая граница исключается
	window, err := st.SetsByExercise(context.Background(), owner, e.ID, &from, &to)
	require.NoError(t, err)
	require.Len(t, window, 1)
	require.Equal(t, 130.0, window[0].WeightKg)
}

// TestIntegration_DeleteExercise_CascadesSets — удаление упражнения
// удаляет его подходы; удаление чужого — ErrNotFound.
func TestIntegration_DeleteExercise_CascadesSets(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	owner := seedAccount(t, st, "owner_7")
	stranger := seedAccount(t, st, "stranger_7")
	w := seedWorkout(t, st, owner, "Arms", time.Now().UTC())
	e := seedExercise(t, st, owner, w.ID, "Curl", 1)
	seedSet(t, st, owner, e.ID, 20, 12, time.Now().UTC())

	err := st.DeleteExercise(context.Background(), stranger, e.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.DeleteExercise(context.Background(), owner, e.ID))

	sets, err := st.SetsByExercise(context.Background(), owner, e.ID, nil, nil)
	require.NoError(t, err)
	require.Empty(t, sets)
}
