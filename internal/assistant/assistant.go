// assistant — клиент генеративной модели для разбора питания и
// генерации тренировок. Контракт узкий: текст на входе, структурный
// JSON на выходе; ошибки поставщика никогда не маскируются дефолтами.
package assistant

import (
	"context"
	"errors"

	"github.com/DuongAty/workout-planner/internal/models"
)

var (
	// ErrUnavailable — ассистент не сконфигурирован или недоступен.
	ErrUnavailable = errors.New("assistant unavailable")
	// ErrBadReply — ответ модели не парсится в ожидаемую структуру.
	ErrBadReply = errors.New("assistant reply is not parseable")
)

// GeneratedExercise — упражнение из сгенерированного плана.
type GeneratedExercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
}

// WorkoutPlan — сгенерированный план тренировки.
type WorkoutPlan struct {
	Title             string              `json:"title"`
	EstimatedCalories float64             `json:"estimated_calories"`
	Exercises         []GeneratedExercise `json:"exercises"`
}

// ProfileSummary — данные профиля, передаваемые генератору тренировок.
type ProfileSummary struct {
	Goal     string
	Gender   string
	WeightKg float64
	HeightCm float64
	Age      uint32
}

// Assistant — контракт генеративного коллаборатора.
type Assistant interface {
	// AnalyzeMeal разбирает свободное описание приёма пищи в макронутриенты.
	AnalyzeMeal(ctx context.Context, text string) (*models.Macros, error)
	// GenerateWorkout генерирует план тренировки под профиль и цель.
	GenerateWorkout(ctx context.Context, profile ProfileSummary) (*WorkoutPlan, error)
}
