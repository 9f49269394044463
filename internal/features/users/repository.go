// Package users — repository.go отвечает за все операции с таблицами
// users и reputation_logs в БД.
package users

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

// Create добавляет нового пользователя. Конфликт по username/email
// превращается в common.ErrUsernameTaken.
func (r *Repository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, email, name, password_hash, reputation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		u.Username, u.Email, u.Name, u.PasswordHash, u.Reputation,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrUsernameTaken
		}
		return fmt.Errorf("ошибка создания пользователя: %w", err)
	}
	return nil
}

// GetByID: если не найден — common.ErrUserNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByUsername: если не найден — common.ErrUserNotFound.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.getOne(ctx, "username = $1", username)
}

func (r *Repository) getOne(ctx context.Context, where string, arg any) (*User, error) {
	query := `
		SELECT id, username, email, name, password_hash, reputation, created_at, updated_at
		FROM users WHERE ` + where
	var u User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Name, &u.PasswordHash,
		&u.Reputation, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}
	return &u, nil
}

// AdjustReputation сдвигает репутацию на delta и возвращает новое значение.
func (r *Repository) AdjustReputation(ctx context.Context, userID int64, delta int) (int, error) {
	query := `
		UPDATE users
		SET reputation = reputation + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING reputation
	`
	var reputation int
	err := r.db.QueryRow(ctx, query, userID, delta).Scan(&reputation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, common.ErrUserNotFound
		}
		return 0, fmt.Errorf("ошибка изменения репутации (user_id=%d): %w", userID, err)
	}
	return reputation, nil
}

// LogReputation записывает изменение репутации в журнал.
func (r *Repository) LogReputation(ctx context.Context, userID int64, sourceUserID *int64, change int, reason string) error {
	query := `
		INSERT INTO reputation_logs (user_id, source_user_id, change, reason)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, userID, sourceUserID, change, reason)
	return err
}
