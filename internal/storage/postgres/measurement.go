package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
)

// SaveMeasurement создаёт запись замера тела.
func (s *Storage) SaveMeasurement(ctx context.Context, m *models.Measurement) error {
	const op = "storage.postgres.SaveMeasurement"

	query := `
		INSERT INTO measurements(id, account_id, weight_kg, body_fat_pct, note, measured_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.WeightKg,
		m.BodyFatPct,
		m.Note,
		m.MeasuredAt,
		m.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MeasurementsByRange возвращает замеры владельца с measured_at в [from, to).
func (s *Storage) MeasurementsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Measurement, error) {
	const op = "storage.postgres.MeasurementsByRange"

	query := `
		SELECT id, account_id, weight_kg, body_fat_pct, note, measured_at, created_at
		FROM measurements
		WHERE account_id = $1 AND measured_at >= $2 AND measured_at < $3
		ORDER BY measured_at
	`

	rows, err := s.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Measurement
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(
			&m.ID,
			&m.AccountID,
			&m.WeightKg,
			&m.BodyFatPct,
			&m.Note,
			&m.MeasuredAt,
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
