package models

import (
	"time"

	"github.com/google/uuid"
)

// MealLog — один приём пищи с макронутриентами,
// полученными от внешнего анализатора текста.
type MealLog struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Description string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	EatenAt     time.Time
	CreatedAt   time.Time
}

// Macros — результат разбора свободного текста анализатором питания.
type Macros struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Measurement — замер тела (вес обязателен, остальное опционально).
type Measurement struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	WeightKg   float64
	BodyFatPct *float64
	Note       string
	MeasuredAt time.Time
	CreatedAt  time.Time
}
