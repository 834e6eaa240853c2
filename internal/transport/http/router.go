// Package http собирает REST-роутер сервиса: цепочку middleware,
// публичные auth-роуты и защищённые доменные роуты.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/DuongAty/workout-planner/internal/service"
	"github.com/DuongAty/workout-planner/internal/transport/http/apierrors"
	"github.com/DuongAty/workout-planner/internal/transport/http/handlers"
	"github.com/DuongAty/workout-planner/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger          *slog.Logger
	Timeout         time.Duration
	RateLimit       int
	RateLimitWindow time.Duration
	BasePath        string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.RateLimit > 0 {
		root.Use(httprate.Limit(
			opts.RateLimit, opts.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			// Ответ лимитера — в общем формате конверта ошибок.
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				apierrors.WriteError(w, r, apierrors.ErrRateLimited)
			}),
		))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	// auth (публичные)
	r.Post("/auth/signup", h.SignUp)
	r.Post("/auth/signin", h.SignIn)
	r.Post("/auth/refresh", h.Refresh)

	// всё остальное — только с валидным access-токеном
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(svc))

		r.Post("/auth/signout", h.SignOut)

		// profile
		r.Get("/profile", h.Profile)
		r.Patch("/profile", h.UpdateProfile)
		r.Post("/profile/avatar/presign", h.AvatarPresign)
		r.Post("/profile/avatar/confirm", h.AvatarConfirm)

		// workouts
		r.Post("/workouts", h.CreateWorkout)
		r.Get("/workouts", h.ListWorkouts)
		r.Post("/workouts/generate", h.GenerateWorkout)
		r.Get("/workouts/{id}", h.WorkoutByID)
		r.Patch("/workouts/{id}", h.UpdateWorkout)
		r.Delete("/workouts/{id}", h.DeleteWorkout)

		// exercises
		r.Post("/workouts/{workout_id}/exercises", h.CreateExercise)
		r.Get("/workouts/{workout_id}/exercises", h.ListExercises)
		r.Delete("/exercises/{id}", h.DeleteExercise)

		// sets
		r.Post("/exercises/{exercise_id}/sets", h.LogSet)
		r.Get("/exercises/{exercise_id}/sets", h.ListSets)

		// nutrition
		r.Post("/meals", h.LogMeal)
		r.Get("/meals", h.ListMeals)

		// measurements
		r.Post("/measurements", h.LogMeasurement)
		r.Get("/measurements", h.ListMeasurements)

		// progress
		r.Get("/progress/exercises/{exercise_id}", h.ExerciseProgress)
		r.Get("/progress/balance", h.EnergyBalance)
	})
}
