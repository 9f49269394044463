// Package comments реализует обсуждение утверждений: комментарии
// с источниками, голоса и жалобы.
// models.go описывает структуры таблиц comments, comment_votes и comment_flags.
package comments

import "time"

// Comment представляет комментарий к утверждению.
type Comment struct {
	ID          int64     `db:"id"`
	StatementID int64     `db:"statement_id"`
	UserID      int64     `db:"user_id"`
	ReplyToID   *int64    `db:"reply_to_id"` // Ответ на другой комментарий (может быть nil)
	Text        string    `db:"text"`
	Source      *string   `db:"source"` // URL источника (комментарий с источником весомее)
	Score       int       `db:"score"`  // Сумма голосов, денормализована для выборок
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Vote — голос за/против комментария. Value всегда +1 или -1.
type Vote struct {
	ID        int64     `db:"id"`
	CommentID int64     `db:"comment_id"`
	UserID    int64     `db:"user_id"`
	Value     int       `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

// Flag — жалоба на комментарий.
type Flag struct {
	ID        int64     `db:"id"`
	CommentID int64     `db:"comment_id"`
	UserID    int64     `db:"user_id"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

// Изменения репутации автора комментария за голоса.
const (
	// ReputationPerUpvote — сколько репутации приносит голос «за»
	ReputationPerUpvote = 2
	// ReputationPerDownvote — сколько репутации отнимает голос «против»
	ReputationPerDownvote = -1
)
