// Package permissions — metrics.go: счётчики Prometheus для проверок квот.
// Метрики отдаются на /metrics операционного HTTP-сервера.
package permissions

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"checkfact.ru/backend/internal/common"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "permissions_checks_total",
		Help: "Проверки квот по действию и результату.",
	}, []string{"action", "result"})

	resetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "permissions_resets_total",
		Help: "Сбросы дневных счётчиков квот.",
	})
)

// observeCheck классифицирует результат проверки для метрик.
// Ошибка эффекта (не квотная) считается отдельным результатом.
func observeCheck(action Action, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, common.ErrUnknownAction):
		result = "unknown_action"
	case errors.Is(err, common.ErrInsufficientReputation):
		result = "insufficient_reputation"
	case errors.Is(err, common.ErrLimitReached):
		result = "limit_reached"
	default:
		result = "effect_error"
	}
	checksTotal.WithLabelValues(action.String(), result).Inc()
}
