package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

const exerciseColumns = `
id, workout_id, account_id, name, muscle_group, position, created_at
`

func scanExercise(row pgx.Row) (*models.Exercise, error) {
	var e models.Exercise

	if err := row.Scan(
		&e.ID,
		&e.WorkoutID,
		&e.AccountID,
		&e.Name,
		&e.MuscleGroup,
		&e.Position,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

// SaveExercise создаёт упражнение внутри тренировки владельца.
func (s *Storage) SaveExercise(ctx context.Context, exercise *models.Exercise) error {
	const op = "storage.postgres.SaveExercise"

	query := `
		INSERT INTO exercises(id, workout_id, account_id, name, muscle_group, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		exercise.ID,
		exercise.WorkoutID,
		exercise.AccountID,
		exercise.Name,
		exercise.MuscleGroup,
		exercise.Position,
		exercise.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ExerciseByID находит упражнение владельца accountID.
func (s *Storage) ExerciseByID(ctx context.Context, accountID, id uuid.UUID) (*models.Exercise, error) {
	const op = "storage.postgres.ExerciseByID"

	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = $1 AND account_id = $2`

	e, err := scanExercise(s.db.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

// ExercisesByWorkout возвращает упражнения тренировки в порядке position.
func (s *Storage) ExercisesByWorkout(ctx context.Context, accountID, workoutID uuid.UUID) ([]models.Exercise, error) {
	const op = "storage.postgres.ExercisesByWorkout"

	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE workout_id = $1 AND account_id = $2
		ORDER BY position, created_at
	`

	rows, err := s.db.Query(ctx, query, workoutID, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeleteExercise удаляет упражнение; подходы каскадируются на уровне БД.
func (s *Storage) DeleteExercise(ctx context.Context, accountID, id uuid.UUID) error {
	const op = "storage.postgres.DeleteExercise"

	query := `DELETE FROM exercises WHERE id = $1 AND account_id = $2`

	cmdTag, err := s.db.Exec(ctx, query, id, accountID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
