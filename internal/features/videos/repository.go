// Package videos — repository.go отвечает за операции с таблицей videos.
package videos

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create добавляет видео в каталог.
func (r *Repository) Create(ctx context.Context, v *Video) error {
	query := `
		INSERT INTO videos (title, url, added_by_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, v.Title, v.URL, v.AddedByID).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка добавления видео: %w", err)
	}
	return nil
}

// GetByID возвращает видео по ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Video, error) {
	query := `
		SELECT id, title, url, added_by_id, created_at, updated_at
		FROM videos WHERE id = $1
	`
	var v Video
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Title, &v.URL, &v.AddedByID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("видео не найдено (id=%d): %w", id, err)
	}
	return &v, nil
}

// List возвращает последние добавленные видео.
func (r *Repository) List(ctx context.Context, limit int) ([]*Video, error) {
	query := `
		SELECT id, title, url, added_by_id, created_at, updated_at
		FROM videos ORDER BY created_at DESC LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки видео: %w", err)
	}
	defer rows.Close()

	var out []*Video
	for rows.Next() {
		var v Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.AddedByID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
