// Package speakers управляет справочником спикеров — людей,
// чьи утверждения проверяются на платформе.
// models.go описывает структуру таблицы speakers.
package speakers

import "time"

// Speaker представляет спикера. Удаление мягкое: строка остаётся,
// чтобы утверждения не теряли ссылку и спикера можно было восстановить.
type Speaker struct {
	ID        int64     `db:"id"`
	FullName  string    `db:"full_name"`
	Title     string    `db:"title"` // Должность/род занятий (может быть пустым)
	IsRemoved bool      `db:"is_removed"`
	AddedByID int64     `db:"added_by_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
