// handlers — REST-хендлеры сервиса. Каждый хендлер: строгий разбор входа,
// вызов бизнес-слоя, унифицированный JSON-ответ; маппинг ошибок — apierrors.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DuongAty/workout-planner/internal/service"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
	"github.com/DuongAty/workout-planner/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости (бизнес-слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// accountID достаёт идентификатор аккаунта, положенный Auth-мидлваром.
// Отсутствие — программная ошибка маршрутизации (роут не за Auth).
func accountID(r *http.Request) (uuid.UUID, error) {
	id, ok := middleware.AccountIDFrom(r.Context())
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	return id, nil
}

// pathID разбирает UUID из URL-параметра chi.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apierrors.ErrBadRequest
	}

	return id, nil
}

// queryDay разбирает query-параметр даты (YYYY-MM-DD);
// отсутствующий параметр означает «сегодня».
func queryDay(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Now().UTC(), nil
	}

	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, apierrors.ErrBadRequest
	}

	return day, nil
}

// queryTime разбирает опциональный query-параметр времени (RFC 3339).
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Допускаем и короткую форму даты.
		d, derr := time.Parse(time.DateOnly, raw)
		if derr != nil {
			return nil, apierrors.ErrBadRequest
		}
		t = d
	}

	return &t, nil
}
