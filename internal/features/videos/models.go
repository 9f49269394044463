// Package videos управляет каталогом видео, на утверждения которых
// пишутся проверки фактов.
// models.go описывает структуру таблицы videos.
package videos

import "time"

// Video представляет видео в каталоге.
type Video struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`        // Ссылка на оригинал (уникальная)
	AddedByID int64     `db:"added_by_id"` // Кто добавил
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
