// Package comments — repository.go отвечает за операции с таблицами
// comments, comment_votes и comment_flags.
package comments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"checkfact.ru/backend/internal/common"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create добавляет комментарий.
func (r *Repository) Create(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (statement_id, user_id, reply_to_id, text, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		c.StatementID, c.UserID, c.ReplyToID, c.Text, c.Source,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка добавления комментария: %w", err)
	}
	return nil
}

// GetByID возвращает комментарий по ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	query := `
		SELECT id, statement_id, user_id, reply_to_id, text, source, score,
		       created_at, updated_at
		FROM comments WHERE id = $1
	`
	var c Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.StatementID, &c.UserID, &c.ReplyToID, &c.Text,
		&c.Source, &c.Score, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("комментарий не найден (id=%d): %w", id, err)
		}
		return nil, fmt.Errorf("ошибка чтения комментария (id=%d): %w", id, err)
	}
	return &c, nil
}

// CreateVote записывает голос и обновляет денормализованный счёт комментария
// в одной транзакции. Повторный голос отсекается уникальным индексом
// (comment_id, user_id) → common.ErrAlreadyVoted.
func (r *Repository) CreateVote(ctx context.Context, commentID, userID int64, value int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		"INSERT INTO comment_votes (comment_id, user_id, value) VALUES ($1, $2, $3)",
		commentID, userID, value,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrAlreadyVoted
		}
		return fmt.Errorf("ошибка записи голоса: %w", err)
	}

	if _, err := tx.Exec(ctx,
		"UPDATE comments SET score = score + $2, updated_at = NOW() WHERE id = $1",
		commentID, value,
	); err != nil {
		return fmt.Errorf("ошибка обновления счёта комментария: %w", err)
	}

	return tx.Commit(ctx)
}

// CreateFlag записывает жалобу. Повторная жалоба того же пользователя
// отсекается уникальным индексом → common.ErrAlreadyFlagged.
func (r *Repository) CreateFlag(ctx context.Context, commentID, userID int64, reason string) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO comment_flags (comment_id, user_id, reason) VALUES ($1, $2, $3)",
		commentID, userID, reason,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrAlreadyFlagged
		}
		return fmt.Errorf("ошибка записи жалобы: %w", err)
	}
	return nil
}

// ListByStatement возвращает комментарии утверждения (новые — первыми).
func (r *Repository) ListByStatement(ctx context.Context, statementID int64) ([]*Comment, error) {
	query := `
		SELECT id, statement_id, user_id, reply_to_id, text, source, score,
		       created_at, updated_at
		FROM comments
		WHERE statement_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки комментариев: %w", err)
	}
	defer rows.Close()

	var out []*Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(
			&c.ID, &c.StatementID, &c.UserID, &c.ReplyToID, &c.Text,
			&c.Source, &c.Score, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
