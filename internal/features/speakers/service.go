// Package speakers — service.go содержит бизнес-логику справочника спикеров.
// Каждая изменяющая операция идёт через авторитет квот атомарно с записью в БД.
package speakers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/features/permissions"
)

// Service управляет спикерами.
type Service struct {
	repo  *Repository
	perms *permissions.Authority
}

// NewService создаёт сервис спикеров.
func NewService(repo *Repository, perms *permissions.Authority) *Service {
	return &Service{repo: repo, perms: perms}
}

// AddSpeaker добавляет спикера от имени пользователя.
func (s *Service) AddSpeaker(ctx context.Context, userID int64, fullName, title string) (*Speaker, error) {
	result, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionAddSpeaker, func() (any, error) {
		sp := &Speaker{FullName: fullName, Title: title, AddedByID: userID}
		if err := s.repo.Create(ctx, sp); err != nil {
			return nil, err
		}
		return sp, nil
	})
	if err != nil {
		return nil, err
	}

	speaker := result.(*Speaker)
	log.WithFields(log.Fields{
		"speaker_id": speaker.ID,
		"user_id":    userID,
	}).Info("Добавлен новый спикер")
	return speaker, nil
}

// EditSpeaker меняет имя и должность спикера.
func (s *Service) EditSpeaker(ctx context.Context, userID, speakerID int64, fullName, title string) error {
	_, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionEditSpeaker, func() (any, error) {
		return nil, s.repo.Update(ctx, speakerID, fullName, title)
	})
	return err
}

// RemoveSpeaker мягко удаляет спикера.
func (s *Service) RemoveSpeaker(ctx context.Context, userID, speakerID int64) error {
	_, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionRemoveSpeaker, func() (any, error) {
		return nil, s.repo.SetRemoved(ctx, speakerID, true)
	})
	return err
}

// RestoreSpeaker восстанавливает удалённого спикера.
func (s *Service) RestoreSpeaker(ctx context.Context, userID, speakerID int64) error {
	_, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionRestoreSpeaker, func() (any, error) {
		return nil, s.repo.SetRemoved(ctx, speakerID, false)
	})
	return err
}

// GetByID возвращает спикера по ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*Speaker, error) {
	return s.repo.GetByID(ctx, id)
}
