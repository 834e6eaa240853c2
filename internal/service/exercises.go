package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// CreateExercise создаёт упражнение внутри тренировки владельца.
func (s *Service) CreateExercise(ctx context.Context, accountID, workoutID uuid.UUID, name, muscleGroup string, position int32) (*models.Exercise, error) {
	const op = "service.exercises.CreateExercise"

	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > maxTitleLen {
		return nil, fmt.Errorf("%s: %w: invalid name", op, ErrInvalidArgument)
	}

	if position < 1 {
		return nil, fmt.Errorf("%s: %w: position must be positive", op, ErrInvalidArgument)
	}

	// Наличие тренировки и владение проверяются одним scoped-чтением.
	if _, err := s.storage.WorkoutByID(ctx, accountID, workoutID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exercise := &models.Exercise{
		ID:          uuid.New(),
		WorkoutID:   workoutID,
		AccountID:   accountID,
		Name:        name,
		MuscleGroup: strings.TrimSpace(muscleGroup),
		Position:    position,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.storage.SaveExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return exercise, nil
}

// ExercisesByWorkout возвращает упражнения тренировки владельца
// в порядке Position.
func (s *Service) ExercisesByWorkout(ctx context.Context, accountID, workoutID uuid.UUID) ([]models.Exercise, error) {
	const op = "service.exercises.ExercisesByWorkout"

	if _, err := s.storage.WorkoutByID(ctx, accountID, workoutID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exercises, err := s.storage.ExercisesByWorkout(ctx, accountID, workoutID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return exercises, nil
}

// DeleteExercise удаляет упражнение владельца вместе с подходами.
func (s *Service) DeleteExercise(ctx context.Context, accountID, id uuid.UUID) error {
	const op = "service.exercises.DeleteExercise"

	if err := s.storage.DeleteExercise(ctx, accountID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
