package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/pkg/log"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// SignUp регистрирует новый аккаунт и сразу открывает сессию.
func (s *Service) SignUp(ctx context.Context, username, email, password string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.auth.SignUp"

	normUsername, err := validateUsername(username)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := validatePassword(password); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.storage.AccountByUsername(ctx, normUsername)
	if err == nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	account := &models.Account{
		ID:           uuid.New(),
		Username:     normUsername,
		Email:        normEmail,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.issueTokenPair(ctx, account)
}

// SignIn выполняет вход по username+пароль.
//
// Отсутствующий аккаунт и неверный пароль наружу неразличимы:
// оба случая дают ErrInvalidCredentials.
func (s *Service) SignIn(ctx context.Context, username, password string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.auth.SignIn"

	normUsername := strings.ToLower(strings.TrimSpace(username))
	if normUsername == "" || len(password) == 0 {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	account, err := s.storage.AccountByUsername(ctx, normUsername)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(account.PasswordHash, password) {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return s.issueTokenPair(ctx, account)
}

// RefreshTokens выполняет ротацию пары токенов.
//
// Инвариант single-use: refresh-токен действителен ровно на одну ротацию.
// Несовпадение предъявленного токена с хранимым хэшем — доказательство либо
// кражи, либо бага клиента; реакция одна — гасится вся сессия (хэш
// сбрасывается, предъявленный access-токен блэклистится), а не тихое принятие.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken, accessToken string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.auth.RefreshTokens"

	lg := log.From(ctx)

	// Access-токен к моменту ротации обычно уже истёк — подпись и claims
	// проверяются, срок жизни нет.
	accountID, err := s.accountIDFromToken(accessToken)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	account, err := s.storage.AccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrAccessDenied)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if account.RefreshTokenHash == nil || *account.RefreshTokenHash == "" {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrAccessDenied)
	}

	if hashRefreshToken(refreshToken) != *account.RefreshTokenHash {
		lg.Warn("refresh_reuse_detected",
			slog.String("op", op),
			slog.String("account_id", accountID.String()),
		)

		// Ротация уже произошла (или токен украден): убиваем сессию целиком.
		if err := s.storage.UpdateRefreshTokenHash(ctx, accountID, nil); err != nil {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := s.blacklist.Add(ctx, accessToken, s.cfg.Auth.RotateBlacklistTTL); err != nil {
			return nil, uuid.Nil, fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrTokenReused)
	}

	// Старый access-токен перестаёт действовать: короткого TTL достаточно,
	// чтобы закрыть окно запросов «в полёте».
	if err := s.blacklist.Add(ctx, accessToken, s.cfg.Auth.RotateBlacklistTTL); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
	}

	return s.issueTokenPair(ctx, account)
}

// SignOut завершает сессию аккаунта.
//
// Хэш refresh-токена сбрасывается (все будущие ротации получат отказ),
// предъявленный access-токен блэклистится на остаток своего срока жизни.
// Ошибка записи в блэклист фатальна: вызывающий не должен считать токен
// отозванным, если запись не удалась.
func (s *Service) SignOut(ctx context.Context, accountID uuid.UUID, accessToken string) error {
	const op = "service.auth.SignOut"

	if err := s.storage.UpdateRefreshTokenHash(ctx, accountID, nil); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	// Токен с истёкшим сроком и так недействителен: блэклист не нужен.
	if ttl := s.remainingLifetime(accessToken); ttl > 0 {
		if err := s.blacklist.Add(ctx, accessToken, ttl); err != nil {
			return fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
		}
	}

	return nil
}

// IsRevoked сообщает, находится ли access-токен в блэклисте.
// Используется цепочкой аутентификации запросов.
func (s *Service) IsRevoked(ctx context.Context, accessToken string) (bool, error) {
	const op = "service.auth.IsRevoked"

	revoked, err := s.blacklist.Contains(ctx, accessToken)
	if err != nil {
		return false, fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
	}

	return revoked, nil
}

// Authenticate проверяет access-токен (подпись, срок, блэклист)
// и возвращает идентификатор и username владельца.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, string, error) {
	const op = "service.auth.Authenticate"

	uid, username, err := s.validateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, err)
	}

	revoked, err := s.IsRevoked(ctx, accessToken)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if revoked {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	return uid, username, nil
}

// issueTokenPair выпускает новую пару access+refresh токенов и
// перезаписывает хэш refresh-токена на аккаунте.
func (s *Service) issueTokenPair(ctx context.Context, account *models.Account) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.auth.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateAccessToken(ctx, account.ID, account.Username, now)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	plain, hash, err := s.generateRefreshToken(ctx)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateRefreshTokenHash(ctx, account.ID, &hash); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    plain,
		AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
	}, account.ID, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateUsername нормализует и проверяет username.
// Политика: 3–32 символа, латиница/цифры/подчёркивание/точка/дефис.
func validateUsername(raw string) (string, error) {
	username := strings.ToLower(strings.TrimSpace(raw))

	if n := len([]rune(username)); n < 3 || n > 32 {
		return "", ErrInvalidUsername
	}

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-':
		default:
			return "", ErrInvalidUsername
		}
	}

	return username, nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", ErrInvalidEmail
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика по умолчанию: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	if len(pw) == 0 {
		return ErrEmptyPassword
	}

	if len([]rune(pw)) < 8 {
		return ErrWeakPassword
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return ErrWeakPassword
	}

	return nil
}
