package models

import "time"

// DayStats — агрегаты по одному календарному дню для упражнения.
//
// Описание:
//   - Max1RM — максимум оценок 1ПМ среди подходов дня;
//   - TotalVolume — сумма объёмов (вес × повторы) подходов дня;
//   - MaxWeight — максимальный «сырой» вес дня;
//   - IsPRDay — true, если MaxWeight не меньше исторического максимума
//     упражнения (включая сам этот день).
type DayStats struct {
	Date        time.Time
	Max1RM      float64
	TotalVolume float64
	MaxWeight   float64
	IsPRDay     bool
}

// BalanceStatus — качественная оценка дневного баланса калорий.
type BalanceStatus int8

const (
	BalanceFavorable BalanceStatus = iota
	BalanceMarginal
	BalanceUnfavorable
)

func (s BalanceStatus) String() string {
	switch s {
	case BalanceFavorable:
		return "favorable"
	case BalanceMarginal:
		return "marginal"
	default:
		return "unfavorable"
	}
}

// BalanceReport — дневной энергетический баланс пользователя.
type BalanceReport struct {
	Date        time.Time
	Intake      float64
	BMR         float64
	WorkoutBurn float64
	TotalBurned float64
	Balance     float64
	Status      BalanceStatus
	// Verdict — человекочитаемая формулировка статуса с учётом цели.
	Verdict string
}
