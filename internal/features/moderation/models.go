// Package moderation ведёт историю правок контента и её коллективную
// модерацию: записи истории одобряются или помечаются жалобой
// пользователями с высокой репутацией.
// models.go описывает структуру таблицы history_actions.
package moderation

import "time"

// Статусы записи истории.
const (
	// StatusPending — запись ожидает решения модераторов
	StatusPending = "pending"
	// StatusApproved — запись одобрена
	StatusApproved = "approved"
	// StatusFlagged — на запись поступила жалоба
	StatusFlagged = "flagged"
)

// HistoryAction — запись о правке контента (утверждения, спикера),
// подлежащая коллективной модерации.
type HistoryAction struct {
	ID           int64      `db:"id"`
	VideoID      int64      `db:"video_id"`
	UserID       int64      `db:"user_id"`     // Автор правки
	ActionType   string     `db:"action_type"` // Например: statement_update, statement_remove
	Changes      string     `db:"changes"`     // Описание изменений (JSON-строка)
	Status       string     `db:"status"`
	ReviewedByID *int64     `db:"reviewed_by_id"`
	ReviewedAt   *time.Time `db:"reviewed_at"`
	CreatedAt    time.Time  `db:"created_at"`
}
