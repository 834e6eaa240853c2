package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/assistant"
	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// maxTitleLen — предельная длина названия тренировки/упражнения.
const maxTitleLen = 200

// CreateWorkout создаёт тренировку.
func (s *Service) CreateWorkout(ctx context.Context, accountID uuid.UUID, title, notes string, scheduledAt time.Time, estimatedCalories float64) (*models.Workout, error) {
	const op = "service.workouts.CreateWorkout"

	title = strings.TrimSpace(title)
	if title == "" || len([]rune(title)) > maxTitleLen {
		return nil, fmt.Errorf("%s: %w: invalid title", op, ErrInvalidArgument)
	}

	if estimatedCalories < 0 {
		return nil, fmt.Errorf("%s: %w: negative estimated calories", op, ErrInvalidArgument)
	}

	now := time.Now().UTC()
	workout := &models.Workout{
		ID:                uuid.New(),
		AccountID:         accountID,
		Title:             title,
		Notes:             strings.TrimSpace(notes),
		ScheduledAt:       scheduledAt.UTC(),
		EstimatedCalories: estimatedCalories,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.storage.SaveWorkout(ctx, workout); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return workout, nil
}

// WorkoutByID возвращает тренировку владельца.
func (s *Service) WorkoutByID(ctx context.Context, accountID, id uuid.UUID) (*models.Workout, error) {
	const op = "service.workouts.WorkoutByID"

	workout, err := s.storage.WorkoutByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return workout, nil
}

// WorkoutsByRange возвращает тренировки владельца в [from, to).
func (s *Service) WorkoutsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Workout, error) {
	const op = "service.workouts.WorkoutsByRange"

	if !to.After(from) {
		return nil, fmt.Errorf("%s: %w: empty range", op, ErrInvalidArgument)
	}

	workouts, err := s.storage.WorkoutsByRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return workouts, nil
}

// UpdateWorkout выполняет частичное обновление тренировки владельца.
// Обновляются только непустые поля update.
func (s *Service) UpdateWorkout(ctx context.Context, accountID, id uuid.UUID, update storage.WorkoutUpdate) (*models.Workout, error) {
	const op = "service.workouts.UpdateWorkout"

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" || len([]rune(title)) > maxTitleLen {
			return nil, fmt.Errorf("%s: %w: invalid title", op, ErrInvalidArgument)
		}
		update.Title = &title
	}

	if update.EstimatedCalories != nil && *update.EstimatedCalories < 0 {
		return nil, fmt.Errorf("%s: %w: negative estimated calories", op, ErrInvalidArgument)
	}

	workout, err := s.storage.UpdateWorkout(ctx, accountID, id, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return workout, nil
}

// DeleteWorkout удаляет тренировку владельца вместе с упражнениями и подходами.
func (s *Service) DeleteWorkout(ctx context.Context, accountID, id uuid.UUID) error {
	const op = "service.workouts.DeleteWorkout"

	if err := s.storage.DeleteWorkout(ctx, accountID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GenerateWorkout просит ассистента составить план тренировки под профиль
// аккаунта и сохраняет его вместе с упражнениями.
func (s *Service) GenerateWorkout(ctx context.Context, accountID uuid.UUID, scheduledAt time.Time) (*models.Workout, []models.Exercise, error) {
	const op = "service.workouts.GenerateWorkout"

	if s.assistant == nil {
		return nil, nil, fmt.Errorf("%s: %w: assistant is not configured", op, ErrDependency)
	}

	account, err := s.storage.AccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	profile := assistant.ProfileSummary{
		Goal:   account.Goal.String(),
		Gender: account.Gender.String(),
	}
	if account.WeightKg != nil {
		profile.WeightKg = *account.WeightKg
	}
	if account.HeightCm != nil {
		profile.HeightCm = *account.HeightCm
	}
	if account.Age != nil {
		profile.Age = *account.Age
	}

	plan, err := s.assistant.GenerateWorkout(ctx, profile)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
	}

	workout, err := s.CreateWorkout(ctx, accountID, plan.Title, "", scheduledAt, plan.EstimatedCalories)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	exercises := make([]models.Exercise, 0, len(plan.Exercises))
	for i, ex := range plan.Exercises {
		exercise, err := s.CreateExercise(ctx, accountID, workout.ID, ex.Name, ex.MuscleGroup, int32(i+1))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}

		exercises = append(exercises, *exercise)
	}

	return workout, exercises, nil
}
