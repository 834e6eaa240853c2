package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DuongAty/workout-planner/internal/assistant"
	"github.com/DuongAty/workout-planner/internal/cache"
	"github.com/DuongAty/workout-planner/internal/config"
	"github.com/DuongAty/workout-planner/internal/mail"
	logctx "github.com/DuongAty/workout-planner/internal/pkg/log"
	"github.com/DuongAty/workout-planner/internal/reminder"
	"github.com/DuongAty/workout-planner/internal/service"
	"github.com/DuongAty/workout-planner/internal/storage/minio"
	"github.com/DuongAty/workout-planner/internal/storage/postgres"
	transport "github.com/DuongAty/workout-planner/internal/transport/http"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()
	log.Info("postgres_connected")

	// Блэклист access-токенов в Redis.
	blacklist, err := cache.NewRedisBlacklist(cfg.Redis.RedisURL, "wp:bl:")
	if err != nil {
		log.Error("redis_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer blacklist.Close()
	log.Info("redis_connected")

	// Сервис.
	srvc := service.New(str, blacklist, *cfg)

	// Объектное хранилище аватаров.
	s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
	avatars, err := minio.New(s3Ctx, cfg)
	s3Cancel()
	if err != nil {
		log.Error("minio_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	srvc.SetAvatarsStorage(avatars)
	log.Info("minio_connected")

	// LLM-ассистент (опционален: без ключа операции вернут dependency failure).
	srvc.SetAssistant(assistant.NewOpenAI(cfg.Assistant))

	log.Info("service_initialized")

	var ready atomic.Int32 // 0 — not ready; 1 — ready

	// Служебный HTTP-сервер: liveness/readiness/metrics.
	opsMux := http.NewServeMux()
	opsMux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	opsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if ready.Load() == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	opsMux.Handle("/metrics", promhttp.Handler())

	opsSrv := &http.Server{
		Addr:              cfg.Ops.Addr(),
		Handler:           opsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("ops_listen_start", "addr", opsSrv.Addr)
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ops_serve_failed", slog.String("err", err.Error()))
		}
	}()

	// Основной REST API.
	router := transport.NewRouter(srvc, transport.Options{
		Logger:          log,
		Timeout:         cfg.Timeouts.Service,
		RateLimit:       cfg.Limits.RateLimit,
		RateLimitWindow: cfg.Limits.RateLimitWindow,
	})

	apiSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Фоновая рассылка напоминаний о тренировках.
	if cfg.Reminder.Enabled && cfg.SMTP.Enabled() {
		worker := reminder.New(cfg.Reminder, cfg.Progress.Location(), str, mail.NewSMTP(cfg.SMTP))
		go worker.Start(logctx.Into(rootCtx, log))
		log.Info("reminder_worker_started")
	}

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", slog.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	ready.Store(1)

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(0)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
	}
	_ = opsSrv.Shutdown(context.Background())

	log.Info("service_stopped")
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
