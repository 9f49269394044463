// Package users — service.go содержит бизнес-логику учётных записей:
// регистрацию, аутентификацию и ведение репутации.
// Сервис также реализует permissions.UserLoader — ядро квот
// разрешает через него числовые ID.
package users

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/common"
	"checkfact.ru/backend/internal/features/permissions"
)

// Service управляет пользователями и их репутацией.
type Service struct {
	repo *Repository
}

// NewService создаёт сервис пользователей.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register создаёт новую учётную запись со стартовой репутацией 0.
func (s *Service) Register(ctx context.Context, username, email, name, password string) (*User, error) {
	if len(password) < 6 {
		return nil, common.ErrPasswordTooShort
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Reputation:   0,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id":  user.ID,
		"username": username,
	}).Info("Зарегистрирован новый пользователь")

	return user, nil
}

// Authenticate проверяет пару username/пароль.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrWrongPassword
	}
	return user, nil
}

// GetByID возвращает пользователя по ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername возвращает пользователя по имени.
func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// LoadByID реализует permissions.UserLoader: отдаёт ядру квот
// минимальное представление {id, reputation}.
func (s *Service) LoadByID(ctx context.Context, id int64) (permissions.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return permissions.User{}, err
	}
	return permissions.User{ID: user.ID, Reputation: user.Reputation}, nil
}

// AdjustReputation сдвигает репутацию пользователя и пишет журнал.
// Ошибка журнала не фатальна: само изменение уже применено.
func (s *Service) AdjustReputation(ctx context.Context, userID int64, sourceUserID *int64, delta int, reason string) error {
	newValue, err := s.repo.AdjustReputation(ctx, userID, delta)
	if err != nil {
		return fmt.Errorf("ошибка изменения репутации: %w", err)
	}

	if err := s.repo.LogReputation(ctx, userID, sourceUserID, delta, reason); err != nil {
		log.WithError(err).Error("Ошибка записи журнала репутации")
	}

	log.WithFields(log.Fields{
		"user_id":    userID,
		"delta":      delta,
		"reputation": newValue,
		"reason":     reason,
	}).Debug("Репутация изменена")

	return nil
}
