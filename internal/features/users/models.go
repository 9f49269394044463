// Package users управляет учётными записями и репутацией.
// models.go описывает структуры для таблиц users и reputation_logs.
package users

import "time"

// User представляет учётную запись на платформе.
type User struct {
	ID           int64     `db:"id"`            // Автоинкрементный ID
	Username     string    `db:"username"`      // Уникальное имя пользователя
	Email        string    `db:"email"`         // Уникальный email
	Name         string    `db:"name"`          // Отображаемое имя (может быть пустым)
	PasswordHash string    `db:"password_hash"` // Argon2id-хеш пароля
	Reputation   int       `db:"reputation"`    // Репутация (знаковая, может уходить в минус)
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ReputationLog — запись об изменении репутации.
// source_user_id — кто вызвал изменение (nil для системных корректировок).
type ReputationLog struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	SourceUserID *int64    `db:"source_user_id"`
	Change       int       `db:"change"`
	Reason       string    `db:"reason"`
	CreatedAt    time.Time `db:"created_at"`
}
