package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// epleyCoefficient — коэффициент формулы Эпли для оценки одноповторного максимума.
const epleyCoefficient = 0.0333

// EstimateOneRepMax оценивает одноповторный максимум по формуле Эпли.
//
// Крайние случаи: 0 повторений — усилия не было, результат 0;
// 1 повторение — подход и есть измерение максимума, результат равен весу.
func EstimateOneRepMax(weightKg float64, reps uint32) float64 {
	switch reps {
	case 0:
		return 0
	case 1:
		return round2(weightKg)
	default:
		return round2(weightKg * (1 + epleyCoefficient*float64(reps)))
	}
}

// ComputeVolume возвращает тоннаж подхода: вес, умноженный на повторения.
func ComputeVolume(weightKg float64, reps uint32) float64 {
	return round2(weightKg * float64(reps))
}

// round2 округляет до двух знаков после запятой (half-up).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TimelineProgress строит подневную хронологию прогресса по упражнению:
// для каждого календарного дня с подходами — лучший расчётный 1ПМ, суммарный
// тоннаж, максимальный вес и признак дня личного рекорда.
//
// Рекорд определяется по «сырому» весу против всей истории подходов по
// упражнению, а не только против запрошенного окна: день внутри окна
// помечается рекордным, только если его максимальный вес не уступает ни
// одному дню за всё время. Границы дня считаются в настроенной зоне сервиса.
func (s *Service) TimelineProgress(ctx context.Context, accountID, exerciseID uuid.UUID, from, to *time.Time) ([]models.DayStats, error) {
	const op = "service.progress.TimelineProgress"

	// Чужое и несуществующее упражнение неразличимы: запрос scoped по аккаунту.
	if _, err := s.storage.ExerciseByID(ctx, accountID, exerciseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Вся история нужна для определения рекорда; окно применяется после.
	sets, err := s.storage.SetsByExercise(ctx, accountID, exerciseID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byDay := make(map[string]*models.DayStats)
	var allTimeMaxWeight float64

	for _, set := range sets {
		if set.WeightKg > allTimeMaxWeight {
			allTimeMaxWeight = set.WeightKg
		}

		oneRM := EstimateOneRepMax(set.WeightKg, set.Reps)

		day := set.PerformedAt.In(s.loc)
		key := day.Format(time.DateOnly)

		stats, ok := byDay[key]
		if !ok {
			stats = &models.DayStats{
				Date: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc),
			}
			byDay[key] = stats
		}

		if oneRM > stats.Max1RM {
			stats.Max1RM = oneRM
		}
		if set.WeightKg > stats.MaxWeight {
			stats.MaxWeight = set.WeightKg
		}
		stats.TotalVolume = round2(stats.TotalVolume + ComputeVolume(set.WeightKg, set.Reps))
	}

	timeline := make([]models.DayStats, 0, len(byDay))
	for _, stats := range byDay {
		if from != nil && stats.Date.Before(startOfDay(from.In(s.loc))) {
			continue
		}
		if to != nil && stats.Date.After(startOfDay(to.In(s.loc))) {
			continue
		}

		stats.IsPRDay = stats.MaxWeight >= allTimeMaxWeight
		timeline = append(timeline, *stats)
	}

	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date.Before(timeline[j].Date)
	})

	return timeline, nil
}


// startOfDay обнуляет время в пределах календарного дня зоны t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
