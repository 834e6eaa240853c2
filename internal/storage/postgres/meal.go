package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
)

// SaveMeal создаёт запись приёма пищи.
func (s *Storage) SaveMeal(ctx context.Context, meal *models.MealLog) error {
	const op = "storage.postgres.SaveMeal"

	query := `
		INSERT INTO meal_logs(id, account_id, description, calories, protein_g, carbs_g, fat_g, eaten_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		meal.ID,
		meal.AccountID,
		meal.Description,
		meal.Calories,
		meal.ProteinG,
		meal.CarbsG,
		meal.FatG,
		meal.EatenAt,
		meal.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MealsByRange возвращает приёмы пищи владельца с eaten_at в [from, to).
func (s *Storage) MealsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.MealLog, error) {
	const op = "storage.postgres.MealsByRange"

	query := `
		SELECT id, account_id, description, calories, protein_g, carbs_g, fat_g, eaten_at, created_at
		FROM meal_logs
		WHERE account_id = $1 AND eaten_at >= $2 AND eaten_at < $3
		ORDER BY eaten_at
	`

	rows, err := s.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.MealLog
	for rows.Next() {
		var m models.MealLog
		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.Description,
			&m.Calories,
			&m.ProteinG,
			&m.CarbsG,
			&m.FatG,
			&m.EatenAt,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
