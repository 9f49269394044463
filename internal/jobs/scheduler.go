// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание: ежедневный сброс дневных квот
// в полночь по настроенному часовому поясу.
package jobs

import (
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/common"
	"checkfact.ru/backend/internal/config"
	"checkfact.ru/backend/internal/features/permissions"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron      *cron.Cron
	authority *permissions.Authority
}

// NewScheduler создаёт планировщик задач с часовым поясом из конфигурации.
func NewScheduler(cfg *config.Config, authority *permissions.Authority) *Scheduler {
	loc := common.LoadTimezone(cfg.AppTimezone)
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:      c,
		authority: authority,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start() {
	// Ежедневный сброс квот в 00:00. Единственный внешний триггер
	// изменения состояния ядра permissions, не связанный с запросом.
	s.cron.AddFunc("0 0 * * *", func() {
		defer recoverJobPanic("daily_quota_reset")

		tracked := s.authority.Reset()
		log.Infof("[CRON] Ежедневный сброс квот: %d %s", tracked, common.PluralizeUsers(tracked))
	})

	s.cron.Start()
	log.Info("Планировщик задач запущен")
}

// Stop останавливает планировщик и дожидается завершения текущих задач.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}

// recoverJobPanic не даёт панике одной cron-задачи уронить процесс.
func recoverJobPanic(job string) {
	if r := recover(); r != nil {
		log.WithFields(log.Fields{
			"job":   job,
			"panic": r,
		}).Error("ПАНИКА в cron-задаче — восстановлено")
	}
}
