// models содержит доменные сущности фитнес-бэкенда.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender — внутренний enum пола пользователя.
type Gender int8

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderOther:
		return "other"
	default:
		return "unspecified"
	}
}

// ParseGender разбирает строковое представление пола.
// Неизвестные значения маппятся в GenderUnspecified.
func ParseGender(s string) Gender {
	switch s {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	case "other":
		return GenderOther
	default:
		return GenderUnspecified
	}
}

// Goal — цель тренировок пользователя; управляет интерпретацией
// дневного энергетического баланса.
type Goal int8

const (
	GoalMaintain Goal = iota
	GoalGainMuscle
	GoalLoseWeight
)

func (g Goal) String() string {
	switch g {
	case GoalGainMuscle:
		return "gain_muscle"
	case GoalLoseWeight:
		return "lose_weight"
	default:
		return "maintain"
	}
}

// ParseGoal разбирает строковое представление цели.
// Неизвестные значения маппятся в GoalMaintain.
func ParseGoal(s string) Goal {
	switch s {
	case "gain_muscle":
		return GoalGainMuscle
	case "lose_weight":
		return GoalLoseWeight
	default:
		return GoalMaintain
	}
}

// Account — зарегистрированный пользователь.
//
// Инварианты:
//   - Username уникален (контролируется на уровне БД);
//   - RefreshTokenHash хранит хэш единственного действующего refresh-токена
//     (sha256 → base64url), nil — активной сессии нет;
//   - профильные поля (вес/рост/возраст) опциональны и участвуют в аналитике
//     с дефолтами (см. service.BasalMetabolicRate).
type Account struct {
	ID               uuid.UUID
	Username         string
	Email            string
	PasswordHash     string
	RefreshTokenHash *string
	Name             string
	AvatarKey        string
	AvatarURL        string
	WeightKg         *float64
	HeightCm         *float64
	Age              *uint32
	Gender           Gender
	Goal             Goal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
