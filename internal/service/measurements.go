package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
)

// LogMeasurement записывает замер тела.
func (s *Service) LogMeasurement(ctx context.Context, accountID uuid.UUID, weightKg float64, bodyFatPct *float64, note string, measuredAt time.Time) (*models.Measurement, error) {
	const op = "service.measurements.LogMeasurement"

	if weightKg <= 0 || weightKg > maxSetWeightKg {
		return nil, fmt.Errorf("%s: %w: weight out of range", op, ErrInvalidArgument)
	}

	if bodyFatPct != nil && (*bodyFatPct <= 0 || *bodyFatPct >= 100) {
		return nil, fmt.Errorf("%s: %w: body fat out of range", op, ErrInvalidArgument)
	}

	if measuredAt.IsZero() {
		measuredAt = time.Now().UTC()
	}

	m := &models.Measurement{
		ID:         uuid.New(),
		AccountID:  accountID,
		WeightKg:   weightKg,
		BodyFatPct: bodyFatPct,
		Note:       strings.TrimSpace(note),
		MeasuredAt: measuredAt.UTC(),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.storage.SaveMeasurement(ctx, m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// MeasurementsByRange возвращает замеры владельца с MeasuredAt в [from, to).
func (s *Service) MeasurementsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Measurement, error) {
	const op = "service.measurements.MeasurementsByRange"

	if !to.After(from) {
		return nil, fmt.Errorf("%s: %w: empty range", op, ErrInvalidArgument)
	}

	measurements, err := s.storage.MeasurementsByRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return measurements, nil
}
