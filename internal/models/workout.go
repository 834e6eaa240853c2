package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout — запланированная тренировка пользователя.
// EstimatedCalories участвует в расчёте дневного энергетического баланса.
type Workout struct {
	ID                uuid.UUID
	AccountID         uuid.UUID
	Title             string
	Notes             string
	ScheduledAt       time.Time
	EstimatedCalories float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Exercise — упражнение внутри тренировки.
// Position задаёт порядок выполнения внутри тренировки.
type Exercise struct {
	ID          uuid.UUID
	WorkoutID   uuid.UUID
	AccountID   uuid.UUID
	Name        string
	MuscleGroup string
	Position    int32
	CreatedAt   time.Time
}

// LoggedSet — один выполненный подход.
// Запись неизменяема после создания; аналитика опирается на порядок по PerformedAt.
type LoggedSet struct {
	ID          uuid.UUID
	ExerciseID  uuid.UUID
	AccountID   uuid.UUID
	WeightKg    float64
	Reps        uint32
	RPE         *float64
	PerformedAt time.Time
	CreatedAt   time.Time
}
