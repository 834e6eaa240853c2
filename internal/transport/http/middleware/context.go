package middleware

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	ctxRequestID ctxKey = iota
	ctxAccountID
	ctxUsername
	ctxAccessToken
)

// RequestIDFrom возвращает request id запроса (пустая строка, если нет).
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID).(string)
	return id
}

// AccountIDFrom возвращает идентификатор аутентифицированного аккаунта.
// Второе значение false — запрос не прошёл через Auth.
func AccountIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxAccountID).(uuid.UUID)
	return id, ok
}

// UsernameFrom возвращает username аутентифицированного аккаунта.
func UsernameFrom(ctx context.Context) string {
	username, _ := ctx.Value(ctxUsername).(string)
	return username
}

// AccessTokenFrom возвращает «сырой» access-токен запроса.
func AccessTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(ctxAccessToken).(string)
	return token
}
