// Package speakers — repository.go отвечает за операции с таблицей speakers.
package speakers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"checkfact.ru/backend/internal/common"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create добавляет спикера.
func (r *Repository) Create(ctx context.Context, sp *Speaker) error {
	query := `
		INSERT INTO speakers (full_name, title, added_by_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, sp.FullName, sp.Title, sp.AddedByID).
		Scan(&sp.ID, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка добавления спикера: %w", err)
	}
	return nil
}

// GetByID возвращает спикера (включая удалённых — для восстановления).
func (r *Repository) GetByID(ctx context.Context, id int64) (*Speaker, error) {
	query := `
		SELECT id, full_name, title, is_removed, added_by_id, created_at, updated_at
		FROM speakers WHERE id = $1
	`
	var sp Speaker
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sp.ID, &sp.FullName, &sp.Title, &sp.IsRemoved,
		&sp.AddedByID, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrSpeakerNotFound
		}
		return nil, fmt.Errorf("ошибка чтения спикера (id=%d): %w", id, err)
	}
	return &sp, nil
}

// Update меняет имя и должность спикера.
func (r *Repository) Update(ctx context.Context, id int64, fullName, title string) error {
	query := `
		UPDATE speakers SET full_name = $2, title = $3, updated_at = NOW()
		WHERE id = $1 AND NOT is_removed
	`
	tag, err := r.db.Exec(ctx, query, id, fullName, title)
	if err != nil {
		return fmt.Errorf("ошибка обновления спикера: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrSpeakerNotFound
	}
	return nil
}

// SetRemoved выставляет флаг мягкого удаления.
// Возвращает ErrSpeakerNotFound / ErrSpeakerNotRemoved, если состояние не подходит.
func (r *Repository) SetRemoved(ctx context.Context, id int64, removed bool) error {
	query := `
		UPDATE speakers SET is_removed = $2, updated_at = NOW()
		WHERE id = $1 AND is_removed = NOT $2
	`
	tag, err := r.db.Exec(ctx, query, id, removed)
	if err != nil {
		return fmt.Errorf("ошибка смены статуса спикера: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if removed {
			return common.ErrSpeakerNotFound
		}
		return common.ErrSpeakerNotRemoved
	}
	return nil
}
