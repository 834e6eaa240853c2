// service содержит бизнес-логику фитнес-бэкенда:
// регистрацию/аутентификацию с ротацией refresh-токенов и блэклистом
// access-токенов, CRUD тренировочных сущностей с изоляцией по владельцу
// и аналитику прогресса/питания.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные зависимости (storage, блэклист, ассистент) потокобезопасны.
//   - Ошибки возвращаются сентинелами и далее маппятся транспортом
//     на HTTP-статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"time"

	"github.com/DuongAty/workout-planner/internal/assistant"
	"github.com/DuongAty/workout-planner/internal/cache"
	"github.com/DuongAty/workout-planner/internal/config"
	"github.com/DuongAty/workout-planner/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Формулировка намеренно одна на оба случая: наружу не должно быть видно,
	// существует ли username. Транспорт: 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен (access/refresh) некорректен по формату/подписи.
	// Транспорт: 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — токен отозван и недействителен независимо от срока.
	// Транспорт: 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrTokenReused — предъявлен refresh-токен, не совпадающий с хранимым
	// хэшем: признак кражи/повторного использования. Сессия гасится целиком.
	// Транспорт: 401.
	ErrTokenReused = errors.New("token detected as reused/invalid")

	// ErrAccessDenied — у аккаунта нет активной сессии (хэш refresh-токена пуст).
	// Транспорт: 401.
	ErrAccessDenied = errors.New("access denied")

	// ErrUsernameTaken — username уже занят. Транспорт: 409.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken — e-mail уже занят другим аккаунтом. Транспорт: 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidEmail — e-mail имеет некорректный формат. Транспорт: 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidUsername — username не проходит политику валидации. Транспорт: 400.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности. Транспорт: 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidArgument — некорректные входные данные операции. Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — сущность не найдена или принадлежит другому аккаунту.
	// Чужие записи неотличимы от несуществующих. Транспорт: 404.
	ErrNotFound = errors.New("not found")

	// ErrDependency — отказ внешней зависимости (Redis/объектное хранилище/
	// ассистент). Никогда не маскируется успехом. Транспорт: 502.
	ErrDependency = errors.New("dependency failure")
)

// Service описывает бизнес-логику сервиса.
type Service struct {
	storage   storage.Storage
	blacklist cache.TokenBlacklist
	cfg       config.Config
	// loc — фиксированная зона группировки по календарным дням.
	loc       *time.Location
	avatars   storage.AvatarsStorage // может быть nil, если S3 не сконфигурирован
	assistant assistant.Assistant    // может быть nil, если ассистент не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, blacklist cache.TokenBlacklist, cfg config.Config) *Service {
	return &Service{
		storage:   storage,
		blacklist: blacklist,
		cfg:       cfg,
		loc:       cfg.Progress.Location(),
	}
}

// SetAvatarsStorage устанавливает объектное хранилище аватаров (опционально).
func (s *Service) SetAvatarsStorage(a storage.AvatarsStorage) {
	s.avatars = a
}

// SetAssistant устанавливает генеративного ассистента (опционально).
func (s *Service) SetAssistant(a assistant.Assistant) {
	s.assistant = a
}
