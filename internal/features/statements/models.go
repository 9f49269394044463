// Package statements управляет утверждениями — цитатами из видео
// с таймкодом, вокруг которых идёт проверка фактов.
// models.go описывает структуру таблицы statements.
package statements

import "time"

// Statement представляет утверждение на таймлайне видео.
// Удаление мягкое: комментарии и история ссылаются на строку.
type Statement struct {
	ID        int64     `db:"id"`
	VideoID   int64     `db:"video_id"`
	SpeakerID *int64    `db:"speaker_id"` // Может быть nil, пока спикер не опознан
	Text      string    `db:"text"`
	Time      int       `db:"time"` // Секунда видео, на которой звучит утверждение
	AuthorID  int64     `db:"author_id"`
	IsRemoved bool      `db:"is_removed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
