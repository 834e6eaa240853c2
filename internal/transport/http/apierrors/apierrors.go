// apierrors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку бизнес-слоя (сентинел из service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: комментарии к сентинелам в service.
package apierrors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DuongAty/workout-planner/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ErrBadRequest — локальная ошибка разбора запроса в хендлере.
var ErrBadRequest = errors.New("bad request")

// ErrRateLimited — превышен лимит запросов; используется лимитером роутера.
var ErrRateLimited = errors.New("rate limited")

// ToHTTP конвертирует ошибку бизнес-слоя в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — таблица маппинга сентинелов service -> HTTP/FE-код/сообщение.
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenRevoked),
		errors.Is(err, service.ErrTokenReused),
		errors.Is(err, service.ErrAccessDenied):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"

	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "already_exists", "already exists"

	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmptyPassword),
		errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"

	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"

	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited", "too many requests"

	case errors.Is(err, service.ErrDependency):
		return http.StatusBadGateway, "dependency_failure", "dependency failure"

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"

	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"

	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
