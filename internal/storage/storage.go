// storage задаёт контракты слоя хранения и сентинельные ошибки,
// на которые опирается бизнес-логика. Реализации: postgres (реляционные
// данные) и minio (объекты-аватары).
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/models"
)

var (
	// ErrNotFound — запись не найдена (аккаунт/тренировка/упражнение/...).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — некорректные параметры обращения к хранилищу.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFoundAvatar — объект аватара отсутствует в бакете.
	ErrNotFoundAvatar = errors.New("avatar not found")
)

// AccountUpdate — частичное обновление профиля.
// Обновляются только поля с ненулевыми указателями; список полей закрытый,
// служебные поля (хэши, идентификаторы) через него недоступны.
type AccountUpdate struct {
	Name     *string
	Email    *string
	WeightKg *float64
	HeightCm *float64
	Age      *uint32
	Gender   *models.Gender
	Goal     *models.Goal
}

// WorkoutUpdate — частичное обновление тренировки.
type WorkoutUpdate struct {
	Title             *string
	Notes             *string
	ScheduledAt       *time.Time
	EstimatedCalories *float64
}

// AccountStorage выполняет операции над аккаунтами.
type AccountStorage interface {
	// SaveAccount создаёт новый аккаунт в БД.
	SaveAccount(ctx context.Context, account *models.Account) error
	// AccountByUsername находит аккаунт по username.
	AccountByUsername(ctx context.Context, username string) (*models.Account, error)
	// AccountByID находит аккаунт по ID.
	AccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// UpdateRefreshTokenHash перезаписывает хэш действующего refresh-токена;
	// nil сбрасывает сессию.
	UpdateRefreshTokenHash(ctx context.Context, id uuid.UUID, hash *string) error
	// UpdateAccount выполняет частичное обновление профиля.
	UpdateAccount(ctx context.Context, id uuid.UUID, update AccountUpdate) (*models.Account, error)
	// UpdateAvatar сохраняет ключ и публичный URL аватара.
	UpdateAvatar(ctx context.Context, id uuid.UUID, key, url string) error
}

// WorkoutStorage выполняет операции над тренировками.
type WorkoutStorage interface {
	// SaveWorkout создаёт тренировку.
	SaveWorkout(ctx context.Context, workout *models.Workout) error
	// WorkoutByID находит тренировку владельца accountID.
	WorkoutByID(ctx context.Context, accountID, id uuid.UUID) (*models.Workout, error)
	// WorkoutsByRange возвращает тренировки владельца с ScheduledAt в [from, to),
	// отсортированные по ScheduledAt.
	WorkoutsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Workout, error)
	// UpdateWorkout выполняет частичное обновление тренировки.
	UpdateWorkout(ctx context.Context, accountID, id uuid.UUID, update WorkoutUpdate) (*models.Workout, error)
	// DeleteWorkout удаляет тренировку вместе с упражнениями и подходами.
	DeleteWorkout(ctx context.Context, accountID, id uuid.UUID) error
	// ScheduledBetween возвращает все тренировки (всех пользователей)
	// с ScheduledAt в [from, to); используется рассылкой напоминаний.
	ScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Workout, error)
}

// ExerciseStorage выполняет операции над упражнениями.
type ExerciseStorage interface {
	// SaveExercise создаёт упражнение внутри тренировки владельца.
	SaveExercise(ctx context.Context, exercise *models.Exercise) error
	// ExerciseByID находит упражнение владельца accountID.
	ExerciseByID(ctx context.Context, accountID, id uuid.UUID) (*models.Exercise, error)
	// ExercisesByWorkout возвращает упражнения тренировки в порядке Position.
	ExercisesByWorkout(ctx context.Context, accountID, workoutID uuid.UUID) ([]models.Exercise, error)
	// DeleteExercise удаляет упражнение вместе с подходами.
	DeleteExercise(ctx context.Context, accountID, id uuid.UUID) error
}

// SetStorage выполняет операции над подходами.
// Подходы неизменяемы: только вставка и чтение.
type SetStorage interface {
	// SaveSet создаёт запись подхода.
	SaveSet(ctx context.Context, set *models.LoggedSet) error
	// SetsByExercise возвращает подходы упражнения владельца accountID,
	// отсортированные по PerformedAt по возрастанию. from/to опциональны.
	SetsByExercise(ctx context.Context, accountID, exerciseID uuid.UUID, from, to *time.Time) ([]models.LoggedSet, error)
}

// MealStorage выполняет операции над записями питания.
type MealStorage interface {
	// SaveMeal создаёт запись приёма пищи.
	SaveMeal(ctx context.Context, meal *models.MealLog) error
	// MealsByRange возвращает приёмы пищи владельца с EatenAt в [from, to),
	// отсортированные по EatenAt.
	MealsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.MealLog, error)
}

// MeasurementStorage выполняет операции над замерами тела.
type MeasurementStorage interface {
	// SaveMeasurement создаёт запись замера.
	SaveMeasurement(ctx context.Context, m *models.Measurement) error
	// MeasurementsByRange возвращает замеры владельца с MeasuredAt в [from, to),
	// отсортированные по MeasuredAt.
	MeasurementsByRange(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]models.Measurement, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	AccountStorage
	WorkoutStorage
	ExerciseStorage
	SetStorage
	MealStorage
	MeasurementStorage
	Close()
}
