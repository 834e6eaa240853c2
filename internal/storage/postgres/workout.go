package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

const workoutColumns = `
id, account_id, title, notes, scheduled_at, estimated_calories, created_at, updated_at
`

func scanWorkout(row pgx.Row) (*models.Workout, error) {
	var w models.Workout

	if err := row.Scan(
		&w.ID,
		&w.AccountID,
		&w.Title,
		&w.Notes,
		&w.ScheduledAt,
		&w.EstimatedCalories,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &w, nil
}

// SaveWorkout создаёт тренировку.
func (s *Storage) SaveWorkout(ctx context.Context, workout *models.Workout) error {
	const op = "storage.postgres.SaveWorkout"

	query := `
		INSERT INTO workouts(id, account_id, title, notes, scheduled_at, estimated_calories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		workout.ID,
		workout.AccountID,
		workout.Title,
		workout.Notes,
		workout.ScheduledAt,
		workout.EstimatedCalories,
		workout.CreatedAt,
		workout.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// WorkoutByID находит тренировку владельца accountID.
// Фильтрация по account_id гарантирует изоляцию данных между аккаунтами.
func (s *Storage) WorkoutByID(ctx context.Context, accountID, id uuid.UUID) (*models.Workout, error) {
	const op = "storage.postgres.WorkoutByID"

	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = $1 AND account_id = $2`

	w, err := scanWorkout(s.db.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return w, nil
}

// WorkoutsByRange возвращает тренировки владельца с scheduled_at в [from, to).
func (s *Storage) WorkoutsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Workout, error) {
	const op = "storage.postgres.WorkoutsByRange"

	query := `
		SELECT ` + workoutColumns + `
		FROM workouts
		WHERE account_id = $1 AND scheduled_at >= $2 AND scheduled_at < $3
		ORDER BY scheduled_at
	`

	rows, err := s.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UpdateWorkout выполняет частичный апдейт тренировки.
func (s *Storage) UpdateWorkout(ctx context.Context, accountID, id uuid.UUID, update storage.WorkoutUpdate) (*models.Workout, error) {
	const op = "storage.postgres.UpdateWorkout"

	sets := []string{"updated_at = now()"}
	args := make([]any, 0, 6)
	args = append(args, id, accountID)
	count := 2

	if update.Title != nil {
		count++
		sets = append(sets, fmt.Sprintf("title = $%d", count))
		args = append(args, *update.Title)
	}

	if update.Notes != nil {
		count++
		sets = append(sets, fmt.Sprintf("notes = $%d", count))
		args = append(args, *update.Notes)
	}

	if update.ScheduledAt != nil {
		count++
		sets = append(sets, fmt.Sprintf("scheduled_at = $%d", count))
		args = append(args, *update.ScheduledAt)
	}

	if update.EstimatedCalories != nil {
		count++
		sets = append(sets, fmt.Sprintf("estimated_calories = $%d", count))
		args = append(args, *update.EstimatedCalories)
	}

	query := `UPDATE workouts SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 AND account_id = $2 RETURNING ` + workoutColumns

	w, err := scanWorkout(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return w, nil
}

// DeleteWorkout удаляет тренировку; упражнения и подходы каскадируются на уровне БД.
func (s *Storage) DeleteWorkout(ctx context.Context, accountID, id uuid.UUID) error {
	const op = "storage.postgres.DeleteWorkout"

	query := `DELETE FROM workouts WHERE id = $1 AND account_id = $2`

	cmdTag, err := s.db.Exec(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ScheduledBetween возвращает все тренировки с scheduled_at в [from, to)
// без фильтра по владельцу; используется рассылкой напоминаний.
func (s *Storage) ScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Workout, error) {
	const op = "storage.postgres.ScheduledBetween"

	query := `
		SELECT ` + workoutColumns + `
		FROM workouts
		WHERE scheduled_at >= $1 AND scheduled_at < $2
		ORDER BY account_id, scheduled_at
	`

	rows, err := s.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
