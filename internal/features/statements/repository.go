// Package statements — repository.go отвечает за операции с таблицей statements.
package statements

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

// Create добавляет утверждение.
func (r *Repository) Create(ctx context.Context, st *Statement) error {
	query := `
		INSERT INTO statements (video_id, speaker_id, text, time, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		st.VideoID, st.SpeakerID, st.Text, st.Time, st.AuthorID,
	).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка добавления утверждения: %w", err)
	}
	return nil
}

// GetByID возвращает утверждение (включая удалённые — для восстановления).
func (r *Repository) GetByID(ctx context.Context, id int64) (*Statement, error) {
	query := `
		SELECT id, video_id, speaker_id, text, time, author_id, is_removed,
		       created_at, updated_at
		FROM statements WHERE id = $1
	`
	var st Statement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&st.ID, &st.VideoID, &st.SpeakerID, &st.Text, &st.Time,
		&st.AuthorID, &st.IsRemoved, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrStatementNotFound
		}
		return nil, fmt.Errorf("ошибка чтения утверждения (id=%d): %w", id, err)
	}
	return &st, nil
}

// Update меняет текст и таймкод утверждения.
func (r *Repository) Update(ctx context.Context, id int64, text string, time int) error {
	query := `
		UPDATE statements SET text = $2, time = $3, updated_at = NOW()
		WHERE id = $1 AND NOT is_removed
	`
	tag, err := r.db.Exec(ctx, query, id, text, time)
	if err != nil {
		return fmt.Errorf("ошибка обновления утверждения: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrStatementNotFound
	}
	return nil
}

// SetRemoved выставляет флаг мягкого удаления.
func (r *Repository) SetRemoved(ctx context.Context, id int64, removed bool) error {
	query := `
		UPDATE statements SET is_removed = $2, updated_at = NOW()
		WHERE id = $1 AND is_removed = NOT $2
	`
	tag, err := r.db.Exec(ctx, query, id, removed)
	if err != nil {
		return fmt.Errorf("ошибка смены статуса утверждения: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if removed {
			return common.ErrStatementNotFound
		}
		return common.ErrStatementNotRemoved
	}
	return nil
}

// ListByVideo возвращает неудалённые утверждения видео по таймкоду.
func (r *Repository) ListByVideo(ctx context.Context, videoID int64) ([]*Statement, error) {
	query := `
		SELECT id, video_id, speaker_id, text, time, author_id, is_removed,
		       created_at, updated_at
		FROM statements
		WHERE video_id = $1 AND NOT is_removed
		ORDER BY time ASC
	`
	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки утверждений: %w", err)
	}
	defer rows.Close()

	var out []*Statement
	for rows.Next() {
		var st Statement
		if err := rows.Scan(
			&st.ID, &st.VideoID, &st.SpeakerID, &st.Text, &st.Time,
			&st.AuthorID, &st.IsRemoved, &st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &st)
	}
	return out, rows.Err()
}
