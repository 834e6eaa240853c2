// reminder — фоновая рассылка напоминаний о запланированных тренировках.
//
// Раз в сутки, в настроенный локальный час, воркер выбирает тренировки
// сегодняшнего дня и ставит по письму на каждую в очередь; отдельная
// горутина разгребает очередь через SMTP. Ошибки отправки логируются
// и не останавливают рассылку.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DuongAty/workout-planner/internal/config"
	"github.com/DuongAty/workout-planner/internal/mail"
	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/pkg/log"
	"github.com/DuongAty/workout-planner/internal/storage"
)

// letter — одно письмо в очереди на отправку.
type letter struct {
	to      string
	subject string
	body    string
}

// Worker рассылает напоминания о тренировках.
type Worker struct {
	cfg     config.ReminderConfig
	loc     *time.Location
	storage storage.Storage
	mailer  mail.Mailer

	queue chan letter
	wg    sync.WaitGroup
}

// New создаёт воркер напоминаний.
func New(cfg config.ReminderConfig, loc *time.Location, st storage.Storage, mailer mail.Mailer) *Worker {
	return &Worker{
		cfg:     cfg,
		loc:     loc,
		storage: st,
		mailer:  mailer,
		queue:   make(chan letter, cfg.QueueSize),
	}
}

// Start запускает планировщик и отправщик.
// Блокируется до отмены ctx; по выходу очередь дорабатывается.
func (w *Worker) Start(ctx context.Context) {
	lg := log.From(ctx)

	w.wg.Add(1)
	go w.sendLoop(ctx)

	for {
		next := w.nextRun(time.Now())
		lg.Info("reminder_scheduled", slog.Time("next_run", next))

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			close(w.queue)
			w.wg.Wait()
			return
		case <-timer.C:
			w.dispatch(ctx)
		}
	}
}

// nextRun возвращает ближайший момент запуска: сегодняшний настроенный час,
// если он ещё впереди, иначе завтрашний.
func (w *Worker) nextRun(now time.Time) time.Time {
	local := now.In(w.loc)

	run := time.Date(local.Year(), local.Month(), local.Day(), w.cfg.Hour, 0, 0, 0, w.loc)
	if !run.After(local) {
		run = run.AddDate(0, 0, 1)
	}

	return run
}

// dispatch выбирает тренировки текущего календарного дня
// и ставит письма в очередь.
func (w *Worker) dispatch(ctx context.Context) {
	const op = "reminder.Worker.dispatch"

	lg := log.From(ctx)

	local := time.Now().In(w.loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, w.loc)
	to := from.AddDate(0, 0, 1)

	workouts, err := w.storage.ScheduledBetween(ctx, from, to)
	if err != nil {
		lg.Error("reminder_query_failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return
	}

	var queued int
	for _, workout := range workouts {
		account, err := w.storage.AccountByID(ctx, workout.AccountID)
		if err != nil {
			lg.Warn("reminder_account_lookup_failed",
				slog.String("op", op),
				slog.String("account_id", workout.AccountID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		if account.Email == "" {
			continue
		}

		select {
		case w.queue <- newLetter(account, &workout, w.loc):
			queued++
		default:
			// Очередь переполнена: остаток дня пропускается, не блокируемся.
			lg.Warn("reminder_queue_full", slog.String("op", op))
			return
		}
	}

	lg.Info("reminder_dispatched",
		slog.Int("workouts", len(workouts)),
		slog.Int("queued", queued),
	)
}

// sendLoop отправляет письма из очереди до её закрытия.
func (w *Worker) sendLoop(ctx context.Context) {
	const op = "reminder.Worker.sendLoop"

	defer w.wg.Done()

	lg := log.From(ctx)

	for l := range w.queue {
		// Отправка идёт и во время shutdown: очередь дорабатывается,
		// поэтому контекст письма отдельный.
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		err := w.mailer.Send(sendCtx, l.to, l.subject, l.body)
		cancel()

		if err != nil {
			lg.Warn("reminder_send_failed",
				slog.String("op", op),
				slog.String("error", err.Error()),
			)
		}
	}
}

// newLetter составляет письмо-напоминание об одной тренировке.
func newLetter(account *models.Account, workout *models.Workout, loc *time.Location) letter {
	name := account.Name
	if name == "" {
		name = account.Username
	}

	at := workout.ScheduledAt.In(loc).Format("15:04")

	return letter{
		to:      account.Email,
		subject: fmt.Sprintf("Workout reminder: %s", workout.Title),
		body: fmt.Sprintf(
			"Hi %s,\n\nYou have a workout scheduled today at %s: %s.\n\nGood luck!\n",
			name, at, workout.Title,
		),
	}
}
