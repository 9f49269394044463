// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозитории, сервисы,
// авторитет квот и планировщик, и собирает всё в один объект App.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/config"
	"checkfact.ru/backend/internal/db/postgres"
	"checkfact.ru/backend/internal/features/comments"
	"checkfact.ru/backend/internal/features/moderation"
	"checkfact.ru/backend/internal/features/permissions"
	"checkfact.ru/backend/internal/features/speakers"
	"checkfact.ru/backend/internal/features/statements"
	"checkfact.ru/backend/internal/features/users"
	"checkfact.ru/backend/internal/features/videos"
	"checkfact.ru/backend/internal/jobs"
)

// App содержит все компоненты приложения.
type App struct {
	DB        *pgxpool.Pool
	Authority *permissions.Authority
	Scheduler *jobs.Scheduler

	Users      *users.Service
	Videos     *videos.Service
	Speakers   *speakers.Service
	Statements *statements.Service
	Comments   *comments.Service
	Moderation *moderation.Service
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Репозитории ===
	userRepo := users.NewRepository(pool)
	videoRepo := videos.NewRepository(pool)
	speakerRepo := speakers.NewRepository(pool)
	statementRepo := statements.NewRepository(pool)
	commentRepo := comments.NewRepository(pool)
	moderationRepo := moderation.NewRepository(pool)

	// === 3. Пользователи и авторитет квот ===
	// Авторитет создаётся один раз и передаётся по ссылке во все сервисы;
	// сервис пользователей служит ему загрузчиком {id, reputation}.
	userService := users.NewService(userRepo)
	authority := permissions.NewAuthority(userService)

	// === 4. Контентные сервисы ===
	videoService := videos.NewService(videoRepo, authority)
	speakerService := speakers.NewService(speakerRepo, authority)
	moderationService := moderation.NewService(moderationRepo, authority)
	statementService := statements.NewService(statementRepo, authority, moderationService)
	commentService := comments.NewService(commentRepo, authority, userService)

	// === 5. Планировщик задач ===
	scheduler := jobs.NewScheduler(cfg, authority)

	return &App{
		DB:         pool,
		Authority:  authority,
		Scheduler:  scheduler,
		Users:      userService,
		Videos:     videoService,
		Speakers:   speakerService,
		Statements: statementService,
		Comments:   commentService,
		Moderation: moderationService,
	}, nil
}

// runMigrations выполняет все SQL-миграции.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	// Инициализируем систему миграций
	if err := postgres.EnsureMigrationTable(ctx, pool); err != nil {
		return err
	}

	// Выполняем миграции по порядку
	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Users},
		{2, migration002Videos},
		{3, migration003Speakers},
		{4, migration004Statements},
		{5, migration005Comments},
		{6, migration006HistoryActions},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		log.Infof("Миграция %d применена", m.version)
	}

	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.

var migration001Users = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(64) UNIQUE NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    name VARCHAR(255) DEFAULT '',
    password_hash VARCHAR(255) NOT NULL,
    reputation INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
CREATE TABLE IF NOT EXISTS reputation_logs (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    source_user_id BIGINT REFERENCES users(id),
    change INTEGER NOT NULL,
    reason VARCHAR(64) NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_reputation_logs_user ON reputation_logs(user_id);
CREATE INDEX IF NOT EXISTS idx_reputation_logs_created_at ON reputation_logs(created_at DESC);
`

var migration002Videos = `
CREATE TABLE IF NOT EXISTS videos (
    id BIGSERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    url VARCHAR(512) UNIQUE NOT NULL,
    added_by_id BIGINT NOT NULL REFERENCES users(id),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos(created_at DESC);
`

var migration003Speakers = `
CREATE TABLE IF NOT EXISTS speakers (
    id BIGSERIAL PRIMARY KEY,
    full_name VARCHAR(255) NOT NULL,
    title VARCHAR(255) DEFAULT '',
    is_removed BOOLEAN DEFAULT FALSE,
    added_by_id BIGINT NOT NULL REFERENCES users(id),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_speakers_full_name ON speakers(full_name);
`

var migration004Statements = `
CREATE TABLE IF NOT EXISTS statements (
    id BIGSERIAL PRIMARY KEY,
    video_id BIGINT NOT NULL REFERENCES videos(id),
    speaker_id BIGINT REFERENCES speakers(id),
    text TEXT NOT NULL,
    time INTEGER NOT NULL,
    author_id BIGINT NOT NULL REFERENCES users(id),
    is_removed BOOLEAN DEFAULT FALSE,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_statements_video ON statements(video_id, time);
`

var migration005Comments = `
CREATE TABLE IF NOT EXISTS comments (
    id BIGSERIAL PRIMARY KEY,
    statement_id BIGINT NOT NULL REFERENCES statements(id),
    user_id BIGINT NOT NULL REFERENCES users(id),
    reply_to_id BIGINT REFERENCES comments(id),
    text TEXT DEFAULT '',
    source VARCHAR(512),
    score INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_comments_statement ON comments(statement_id, created_at DESC);
CREATE TABLE IF NOT EXISTS comment_votes (
    id BIGSERIAL PRIMARY KEY,
    comment_id BIGINT NOT NULL REFERENCES comments(id),
    user_id BIGINT NOT NULL REFERENCES users(id),
    value INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT NOW(),
    UNIQUE (comment_id, user_id)
);
CREATE TABLE IF NOT EXISTS comment_flags (
    id BIGSERIAL PRIMARY KEY,
    comment_id BIGINT NOT NULL REFERENCES comments(id),
    user_id BIGINT NOT NULL REFERENCES users(id),
    reason VARCHAR(255) DEFAULT '',
    created_at TIMESTAMP DEFAULT NOW(),
    UNIQUE (comment_id, user_id)
);
`

var migration006HistoryActions = `
CREATE TABLE IF NOT EXISTS history_actions (
    id BIGSERIAL PRIMARY KEY,
    video_id BIGINT NOT NULL REFERENCES videos(id),
    user_id BIGINT NOT NULL REFERENCES users(id),
    action_type VARCHAR(64) NOT NULL,
    changes TEXT DEFAULT '',
    status VARCHAR(16) DEFAULT 'pending',
    reviewed_by_id BIGINT REFERENCES users(id),
    reviewed_at TIMESTAMP,
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_history_actions_status ON history_actions(status, created_at);
`
