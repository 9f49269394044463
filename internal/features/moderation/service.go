// Package moderation — service.go содержит бизнес-логику коллективной модерации.
package moderation

import (
	"context"

	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/features/permissions"
)

// Service управляет историей правок и её модерацией.
type Service struct {
	repo  *Repository
	perms *permissions.Authority
}

// NewService создаёт сервис модерации.
func NewService(repo *Repository, perms *permissions.Authority) *Service {
	return &Service{repo: repo, perms: perms}
}

// LogAction записывает правку контента в историю (статус pending).
// Вызывается другими сервисами после успешной правки, квоту не тратит:
// квота уже списана за саму правку.
func (s *Service) LogAction(ctx context.Context, videoID, userID int64, actionType, changes string) error {
	h := &HistoryAction{
		VideoID:    videoID,
		UserID:     userID,
		ActionType: actionType,
		Changes:    changes,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		// История не должна ронять основную операцию
		log.WithError(err).Error("Ошибка записи истории правок")
		return err
	}
	return nil
}

// ApproveHistoryAction одобряет запись истории.
func (s *Service) ApproveHistoryAction(ctx context.Context, userID, actionID int64) error {
	_, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionApproveHistoryAction, func() (any, error) {
		return nil, s.repo.SetStatus(ctx, actionID, StatusApproved, userID)
	})
	return err
}

// FlagHistoryAction помечает запись истории жалобой.
func (s *Service) FlagHistoryAction(ctx context.Context, userID, actionID int64) error {
	_, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionFlagHistoryAction, func() (any, error) {
		return nil, s.repo.SetStatus(ctx, actionID, StatusFlagged, userID)
	})
	return err
}

// ListPending возвращает записи, ожидающие решения модераторов.
func (s *Service) ListPending(ctx context.Context, limit int) ([]*HistoryAction, error) {
	return s.repo.ListPending(ctx, limit)
}
