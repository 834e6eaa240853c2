package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/DuongAty/workout-planner/internal/config"
	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/mocks"
)

// fakeMailer — мейлер-заглушка, копит отправленные письма.
type fakeMailer struct {
	mu   sync.Mutex
	sent []letter
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, letter{to: to, subject: subject, body: body})
	return nil
}

func (m *fakeMailer) letters() []letter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]letter(nil), m.sent...)
}

func newWorker(t *testing.T, hour int) (*Worker, *mocks.MockStorage, *fakeMailer, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	mailer := &fakeMailer{}
	w := New(
		config.ReminderConfig{Enabled: true, Hour: hour, QueueSize: 8},
		time.FixedZone("UTC+7", 7*3600),
		st,
		mailer,
	)
	return w, st, mailer, ctrl
}

func TestNextRun_TodayIfAhead(t *testing.T) {
	t.Parallel()

	w, _, _, ctrl := newWorker(t, 7)
	defer ctrl.Finish()

	// 02:00 UTC == 09:00 UTC+7 — сегодняшние 07:00 уже прошли.
	now := time.Date(2026, 8, 15, 2, 0, 0, 0, time.UTC)
	next := w.nextRun(now)
	require.Equal(t, time.Date(2026, 8, 16, 7, 0, 0, 0, w.loc), next)

	// 22:00 UTC 14-го == 05:00 UTC+7 15-го — сегодняшние 07:00 впереди.
	now = time.Date(2026, 8, 14, 22, 0, 0, 0, time.UTC)
	next = w.nextRun(now)
	require.Equal(t, time.Date(2026, 8, 15, 7, 0, 0, 0, w.loc), next)
}

func TestNextRun_ExactHourGoesTomorrow(t *testing.T) {
	t.Parallel()

	w, _, _, ctrl := newWorker(t, 7)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 15, 7, 0, 0, 0, w.loc)
	next := w.nextRun(now)
	require.Equal(t, time.Date(2026, 8, 16, 7, 0, 0, 0, w.loc), next)
}

func TestNewLetter_FallsBackToUsername(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*3600)
	account := &models.Account{Username: "athlete", Email: "a@example.com"}
	workout := &models.Workout{
		Title:       "Leg day",
		ScheduledAt: time.Date(2026, 8, 15, 11, 30, 0, 0, time.UTC), // 18:30 UTC+7
	}

	l := newLetter(account, workout, loc)
	require.Equal(t, "a@example.com", l.to)
	require.Equal(t, "Workout reminder: Leg day", l.subject)
	require.Contains(t, l.body, "Hi athlete,")
	require.Contains(t, l.body, "18:30")
	require.Contains(t, l.body, "Leg day")

	account.Name = "Alex"
	l = newLetter(account, workout, loc)
	require.Contains(t, l.body, "Hi Alex,")
}

func TestDispatch_QueuesTodaysWorkouts(t *testing.T) {
	t.Parallel()

	w, st, mailer, ctrl := newWorker(t, 7)
	defer ctrl.Finish()

	accountID := uuid.New()
	noEmailID := uuid.New()
	workouts := []models.Workout{
		{ID: uuid.New(), AccountID: accountID, Title: "Leg day", ScheduledAt: time.Now()},
		{ID: uuid.New(), AccountID: noEmailID, Title: "Run", ScheduledAt: time.Now()},
	}

	st.EXPECT().ScheduledBetween(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, from, to time.Time) ([]models.Workout, error) {
			// Границы дня в зоне воркера, полуинтервал в сутки.
			require.Equal(t, w.loc, from.Location())
			require.Equal(t, 0, from.Hour())
			require.Equal(t, 24*time.Hour, to.Sub(from))
			return workouts, nil
		})
	st.EXPECT().AccountByID(gomock.Any(), accountID).
		Return(&models.Account{ID: accountID, Username: "athlete", Email: "a@example.com"}, nil)
	// Аккаунт без email пропускается молча.
	st.EXPECT().AccountByID(gomock.Any(), noEmailID).
		Return(&models.Account{ID: noEmailID, Username: "ghost"}, nil)

	w.dispatch(context.Background())
	close(w.queue)

	// Разгребаем очередь так же, как sendLoop.
	w.wg.Add(1)
	w.sendLoop(context.Background())

	sent := mailer.letters()
	require.Len(t, sent, 1)
	require.Equal(t, "a@example.com", sent[0].to)
	require.Equal(t, "Workout reminder: Leg day", sent[0].subject)
}

func TestDispatch_AccountLookupFailureSkipsWorkout(t *testing.T) {
	t.Parallel()

	w, st, mailer, ctrl := newWorker(t, 7)
	defer ctrl.Finish()

	badID := uuid.New()
	goodID := uuid.New()

	st.EXPECT().ScheduledBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Workout{
		{ID: uuid.New(), AccountID: badID, Title: "w1"},
		{ID: uuid.New(), AccountID: goodID, Title: "w2"},
	}, nil)
	st.EXPECT().AccountByID(gomock.Any(), badID).Return(nil, context.DeadlineExceeded)
	st.EXPECT().AccountByID(gomock.Any(), goodID).
		Return(&models.Account{ID: goodID, Username: "ok", Email: "ok@example.com"}, nil)

	w.dispatch(context.Background())
	close(w.queue)

	w.wg.Add(1)
	w.sendLoop(context.Background())

	sent := mailer.letters()
	require.Len(t, sent, 1)
	require.Equal(t, "ok@example.com", sent[0].to)
}
