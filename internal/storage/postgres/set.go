package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DuongAty/workout-planner/internal/models"
)

const setColumns = `
id, exercise_id, account_id, weight_kg, reps, rpe, performed_at, created_at
`

func scanSet(row pgx.Row) (*models.LoggedSet, error) {
	var set models.LoggedSet
	var reps int32

	if err := row.Scan(
		&set.ID,
		&set.ExerciseID,
		&set.AccountID,
		&set.WeightKg,
		&reps,
		&set.RPE,
		&set.PerformedAt,
		&set.CreatedAt,
	); err != nil {
		return nil, err
	}

	if reps < 0 {
		reps = 0
	}
	set.Reps = uint32(reps)

	return &set, nil
}

// SaveSet создаёт запись подхода. Записи неизменяемы: UPDATE-пути нет.
func (s *Storage) SaveSet(ctx context.Context, set *models.LoggedSet) error {
	const op = "storage.postgres.SaveSet"

	query := `
		INSERT INTO logged_sets(id, exercise_id, account_id, weight_kg, reps, rpe, performed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		set.ID,
		set.ExerciseID,
		set.AccountID,
		set.WeightKg,
		int32(set.Reps),
		set.RPE,
		set.PerformedAt,
		set.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetsByExercise возвращает подходы упражнения владельца accountID в порядке
// performed_at по возрастанию; from/to опционально ограничивают диапазон [from, to).
func (s *Storage) SetsByExercise(ctx context.Context, accountID, exerciseID uuid.UUID, from, to *time.Time) ([]models.LoggedSet, error) {
	const op = "storage.postgres.SetsByExercise"

	query := `
		SELECT ` + setColumns + `
		FROM logged_sets
		WHERE exercise_id = $1 AND account_id = $2
	`
	args := []any{exerciseID, accountID}

	if from != nil {
		args = append(args, *from)
		query += ` AND performed_at >= $` + strconv.Itoa(len(args))
	}

	if to != nil {
		args = append(args, *to)
		query += ` AND performed_at < $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY performed_at`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.LoggedSet
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *set)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
