package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// refreshTokenBytes — длина случайной части refresh-токена до кодирования.
const refreshTokenBytes = 32

// accessClaims — payload access-токена.
type accessClaims struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// generateAccessToken выпускает подписанный JWT (HS256).
func (s *Service) generateAccessToken(_ context.Context, accountID uuid.UUID, username string, now time.Time) (string, error) {
	const op = "service.token.generateAccessToken"

	claims := accessClaims{
		UID:      accountID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Auth.Issuer,
			Audience:  jwt.ClaimStrings(s.cfg.Auth.Audience),
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.AccessTokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// generateRefreshToken выпускает непрозрачный refresh-токен.
// Возвращает plaintext (клиенту) и хэш (в хранилище); plaintext нигде
// не сохраняется.
func (s *Service) generateRefreshToken(_ context.Context) (plain, hash string, err error) {
	const op = "service.token.generateRefreshToken"

	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	plain = base64.RawURLEncoding.EncodeToString(buf)

	return plain, hashRefreshToken(plain), nil
}

// hashRefreshToken возвращает детерминированный хэш refresh-токена
// для хранения и сравнения.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// validateAccessToken полностью проверяет access-токен: подпись, алгоритм,
// issuer/audience и срок жизни. Блэклист здесь не проверяется.
func (s *Service) validateAccessToken(tokenString string) (uuid.UUID, string, error) {
	const op = "service.token.validateAccessToken"

	claims, err := s.parseClaims(tokenString, true)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, err)
	}

	uid, err := uuid.Parse(claims.UID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, claims.Username, nil
}

// accountIDFromToken извлекает идентификатор аккаунта из access-токена,
// игнорируя истечение срока. Подпись проверяется всегда.
func (s *Service) accountIDFromToken(tokenString string) (uuid.UUID, error) {
	const op = "service.token.accountIDFromToken"

	claims, err := s.parseClaims(tokenString, false)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	uid, err := uuid.Parse(claims.UID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, nil
}

// remainingLifetime возвращает остаток срока жизни access-токена.
// Для нечитаемого или уже истёкшего токена возвращает 0 —
// блэклист трактует неположительный TTL как no-op.
func (s *Service) remainingLifetime(tokenString string) time.Duration {
	claims, err := s.parseClaims(tokenString, false)
	if err != nil || claims.ExpiresAt == nil {
		return 0
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// parseClaims разбирает и верифицирует JWT.
// При checkExpiry=false истёкший, но корректно подписанный токен
// считается валидным (нужно для ротации и sign-out).
func (s *Service) parseClaims(tokenString string, checkExpiry bool) (*accessClaims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.cfg.Auth.JWTSecret), nil
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.cfg.Auth.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Auth.Issuer))
	}
	if len(s.cfg.Auth.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(s.cfg.Auth.Audience[0]))
	}
	if !checkExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &accessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
