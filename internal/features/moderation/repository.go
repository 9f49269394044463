// Package moderation — repository.go отвечает за операции с таблицей history_actions.
package moderation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"checkfact.ru/backend/internal/common"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись истории в статусе pending.
func (r *Repository) Create(ctx context.Context, h *HistoryAction) error {
	query := `
		INSERT INTO history_actions (video_id, user_id, action_type, changes, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	h.Status = StatusPending
	err := r.db.QueryRow(ctx, query,
		h.VideoID, h.UserID, h.ActionType, h.Changes, h.Status,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка записи истории: %w", err)
	}
	return nil
}

// SetStatus переводит запись из pending в approved/flagged.
// Уже рассмотренную запись второй раз рассмотреть нельзя.
func (r *Repository) SetStatus(ctx context.Context, id int64, status string, reviewerID int64) error {
	query := `
		UPDATE history_actions
		SET status = $2, reviewed_by_id = $3, reviewed_at = NOW()
		WHERE id = $1 AND status = $4
	`
	tag, err := r.db.Exec(ctx, query, id, status, reviewerID, StatusPending)
	if err != nil {
		return fmt.Errorf("ошибка смены статуса записи истории: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Либо записи нет, либо она уже рассмотрена — различаем запросом
		var exists bool
		if err := r.db.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM history_actions WHERE id = $1)", id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("ошибка проверки записи истории: %w", err)
		}
		if !exists {
			return common.ErrHistoryActionNotFound
		}
		return common.ErrHistoryActionReviewed
	}
	return nil
}

// ListPending возвращает записи, ожидающие решения (старые — первыми).
func (r *Repository) ListPending(ctx context.Context, limit int) ([]*HistoryAction, error) {
	query := `
		SELECT id, video_id, user_id, action_type, changes, status,
		       reviewed_by_id, reviewed_at, created_at
		FROM history_actions
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки записей истории: %w", err)
	}
	defer rows.Close()

	var out []*HistoryAction
	for rows.Next() {
		var h HistoryAction
		if err := rows.Scan(
			&h.ID, &h.VideoID, &h.UserID, &h.ActionType, &h.Changes,
			&h.Status, &h.ReviewedByID, &h.ReviewedAt, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}
