package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/assistant"
	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// Константы базового метаболизма.
const (
	bmrBase         = 88.36
	bmrWeightFactor = 13.4
	bmrHeightFactor = 4.8

	defaultWeightKg = 70.0
	defaultHeightCm = 170.0
)

// balanceMargin — ширина «коридора» вокруг нуля при оценке энергобаланса, ккал.
const balanceMargin = 300.0

// LogMeal записывает приём пищи: свободное описание блюда уходит ассистенту
// на разбор макронутриентов, результат сохраняется вместе с записью.
func (s *Service) LogMeal(ctx context.Context, accountID uuid.UUID, description string, eatenAt time.Time) (*models.MealLog, error) {
	const op = "service.nutrition.LogMeal"

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%s: %w: empty description", op, ErrInvalidArgument)
	}

	if s.assistant == nil {
		return nil, fmt.Errorf("%s: %w: assistant is not configured", op, ErrDependency)
	}

	macros, err := s.assistant.AnalyzeMeal(ctx, description)
	if err != nil {
		if errors.Is(err, assistant.ErrBadReply) || errors.Is(err, assistant.ErrUnavailable) {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if eatenAt.IsZero() {
		eatenAt = time.Now().UTC()
	}

	meal := &models.MealLog{
		ID:          uuid.New(),
		AccountID:   accountID,
		Description: description,
		Calories:    macros.Calories,
		ProteinG:    macros.ProteinG,
		CarbsG:      macros.CarbsG,
		FatG:        macros.FatG,
		EatenAt:     eatenAt.UTC(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.storage.SaveMeal(ctx, meal); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return meal, nil
}

// MealsForDay возвращает приёмы пищи за календарный день в зоне сервиса.
func (s *Service) MealsForDay(ctx context.Context, accountID uuid.UUID, day time.Time) ([]models.MealLog, error) {
	const op = "service.nutrition.MealsForDay"

	from := startOfDay(day.In(s.loc))
	to := from.AddDate(0, 0, 1)

	meals, err := s.storage.MealsByRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return meals, nil
}

// BasalMetabolicRate оценивает базовый метаболизм аккаунта, ккал/сутки.
// Не заполненные в профиле вес и рост заменяются значениями по умолчанию
// (70 кг / 170 см), результат округляется до целого.
func BasalMetabolicRate(account *models.Account) float64 {
	weight := defaultWeightKg
	if account.WeightKg != nil && *account.WeightKg > 0 {
		weight = *account.WeightKg
	}

	height := defaultHeightCm
	if account.HeightCm != nil && *account.HeightCm > 0 {
		height = *account.HeightCm
	}

	return math.Round(bmrBase + bmrWeightFactor*weight + bmrHeightFactor*height)
}

// DailyEnergyBalance считает энергобаланс за календарный день:
// съеденные калории против базового метаболизма и затрат тренировок,
// и выносит вердикт относительно цели аккаунта.
func (s *Service) DailyEnergyBalance(ctx context.Context, accountID uuid.UUID, day time.Time) (*models.BalanceReport, error) {
	const op = "service.nutrition.DailyEnergyBalance"

	account, err := s.storage.AccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	from := startOfDay(day.In(s.loc))
	to := from.AddDate(0, 0, 1)

	meals, err := s.storage.MealsByRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var intake float64
	for _, meal := range meals {
		intake += meal.Calories
	}

	workouts, err := s.storage.WorkoutsByRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var workoutBurn float64
	for _, workout := range workouts {
		workoutBurn += workout.EstimatedCalories
	}

	bmr := BasalMetabolicRate(account)
	totalBurned := bmr + workoutBurn
	balance := round2(intake - totalBurned)

	status, verdict := balanceVerdict(account.Goal, balance)

	return &models.BalanceReport{
		Date:        from,
		Intake:      round2(intake),
		BMR:         bmr,
		WorkoutBurn: round2(workoutBurn),
		TotalBurned: round2(totalBurned),
		Balance:     balance,
		Status:      status,
		Verdict:     verdict,
	}, nil
}

// balanceVerdict оценивает дневной баланс относительно цели.
//
// Коридор ±300 ккал вокруг нуля считается нейтральным; выход из коридора
// трактуется в зависимости от цели: профицит помогает набору массы и мешает
// похудению, дефицит — наоборот. Для поддержания формы любой выход из
// коридора неблагоприятен.
func balanceVerdict(goal models.Goal, balance float64) (models.BalanceStatus, string) {
	switch goal {
	case models.GoalGainMuscle:
		switch {
		case balance > balanceMargin:
			return models.BalanceFavorable, "calorie surplus supports muscle gain"
		case balance >= -balanceMargin:
			return models.BalanceMarginal, "intake is close to expenditure; add calories to gain muscle"
		default:
			return models.BalanceUnfavorable, "calorie deficit works against muscle gain"
		}
	case models.GoalLoseWeight:
		switch {
		case balance < -balanceMargin:
			return models.BalanceFavorable, "calorie deficit supports weight loss"
		case balance <= balanceMargin:
			return models.BalanceMarginal, "intake is close to expenditure; reduce calories to lose weight"
		default:
			return models.BalanceUnfavorable, "calorie surplus works against weight loss"
		}
	default: // models.GoalMaintain и незаполненная цель.
		switch {
		case math.Abs(balance) <= balanceMargin:
			return models.BalanceFavorable, "intake matches expenditure"
		case balance > 0:
			return models.BalanceMarginal, "calorie surplus; trim intake to maintain weight"
		default:
			return models.BalanceMarginal, "calorie deficit; add calories to maintain weight"
		}
	}
}
