// Package main — точка входа бэкенда.
// Загружает конфигурацию, инициализирует приложение, запускает планировщик
// и операционный HTTP-сервер (healthz/metrics).
// Поддерживает graceful shutdown по SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/app"
	"checkfact.ru/backend/internal/config"
)

func main() {
	// .env удобен для локальной разработки; в Docker переменные придут из окружения
	_ = godotenv.Load()

	// Настраиваем логирование
	setupLogging()

	log.Info("=== Бэкенд запускается ===")

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Не удалось загрузить конфигурацию")
	}

	// Устанавливаем уровень логирования из конфига
	level, err := log.ParseLevel(cfg.AppLogLevel)
	if err == nil {
		log.SetLevel(level)
	}

	// Контекст с отменой для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем приложение (БД, сервисы, авторитет квот)
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Не удалось инициализировать приложение")
	}
	defer application.DB.Close()

	// Запускаем планировщик задач (ежедневный сброс квот)
	application.Scheduler.Start()
	defer application.Scheduler.Stop()

	// Операционный HTTP: проверка живости и метрики Prometheus
	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := application.DB.Ping(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Infof("Операционный HTTP слушает %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Ошибка HTTP-сервера")
		}
	}()

	// Обрабатываем сигналы остановки (Ctrl+C, docker stop)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Info("=== Бэкенд готов к работе ===")

	// Ждём сигнала остановки
	sig := <-quit
	log.Infof("Получен сигнал %s, останавливаемся...", sig)

	// Останавливаем HTTP с таймаутом, затем отменяем контекст
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Ошибка остановки HTTP-сервера")
	}
	cancel()

	log.Info("=== Бэкенд остановлен ===")
}

// setupLogging настраивает формат логов.
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
