package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// Ограничения на значения подхода.
const (
	maxSetWeightKg = 1000.0
	maxSetReps     = 1000
)

// LogSet записывает выполненный подход. Подходы неизменяемы:
// исправление — это удаление упражнения и повторная запись.
func (s *Service) LogSet(ctx context.Context, accountID, exerciseID uuid.UUID, weightKg float64, reps uint32, rpe *float64, performedAt time.Time) (*models.LoggedSet, error) {
	const op = "service.sets.LogSet"

	if weightKg < 0 || weightKg > maxSetWeightKg {
		return nil, fmt.Errorf("%s: %w: weight out of range", op, ErrInvalidArgument)
	}

	if reps > maxSetReps {
		return nil, fmt.Errorf("%s: %w: reps out of range", op, ErrInvalidArgument)
	}

	if rpe != nil && (*rpe < 1 || *rpe > 10) {
		return nil, fmt.Errorf("%s: %w: rpe out of range", op, ErrInvalidArgument)
	}

	if _, err := s.storage.ExerciseByID(ctx, accountID, exerciseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if performedAt.IsZero() {
		performedAt = time.Now().UTC()
	}

	set := &models.LoggedSet{
		ID:          uuid.New(),
		ExerciseID:  exerciseID,
		AccountID:   accountID,
		WeightKg:    weightKg,
		Reps:        reps,
		RPE:         rpe,
		PerformedAt: performedAt.UTC(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.storage.SaveSet(ctx, set); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return set, nil
}

// SetsByExercise возвращает подходы упражнения владельца
// по возрастанию PerformedAt; from/to опциональны.
func (s *Service) SetsByExercise(ctx context.Context, accountID, exerciseID uuid.UUID, from, to *time.Time) ([]models.LoggedSet, error) {
	const op = "service.sets.SetsByExercise"

	if _, err := s.storage.ExerciseByID(ctx, accountID, exerciseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sets, err := s.storage.SetsByExercise(ctx, accountID, exerciseID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sets, nil
}
