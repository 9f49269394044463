// Package videos — service.go содержит бизнес-логику каталога видео.
package videos

import (
	"context"

	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/features/permissions"
)

// Service управляет каталогом видео.
type Service struct {
	repo  *Repository
	perms *permissions.Authority
}

// NewService создаёт сервис видео.
func NewService(repo *Repository, perms *permissions.Authority) *Service {
	return &Service{repo: repo, perms: perms}
}

// AddVideo добавляет видео от имени пользователя.
// Квота и порог репутации проверяются атомарно с записью в БД.
func (s *Service) AddVideo(ctx context.Context, userID int64, title, url string) (*Video, error) {
	result, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionAddVideo, func() (any, error) {
		v := &Video{Title: title, URL: url, AddedByID: userID}
		if err := s.repo.Create(ctx, v); err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return nil, err
	}

	video := result.(*Video)
	log.WithFields(log.Fields{
		"video_id": video.ID,
		"user_id":  userID,
	}).Info("Добавлено новое видео")
	return video, nil
}

// GetByID возвращает видео по ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*Video, error) {
	return s.repo.GetByID(ctx, id)
}

// List возвращает последние добавленные видео.
func (s *Service) List(ctx context.Context, limit int) ([]*Video, error) {
	return s.repo.List(ctx, limit)
}
