// Package statements — service.go содержит бизнес-логику утверждений.
// Правка своего утверждения квоту не тратит; правка чужого, удаление
// и восстановление идут через авторитет квот и попадают в историю модерации.
package statements

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/features/moderation"
	"checkfact.ru/backend/internal/features/permissions"
)

// Service управляет утверждениями.
type Service struct {
	repo    *Repository
	perms   *permissions.Authority
	history *moderation.Service
}

// NewService создаёт сервис утверждений.
func NewService(repo *Repository, perms *permissions.Authority, history *moderation.Service) *Service {
	return &Service{repo: repo, perms: perms, history: history}
}

// AddStatement добавляет утверждение к видео.
func (s *Service) AddStatement(ctx context.Context, userID, videoID int64, speakerID *int64, text string, time int) (*Statement, error) {
	result, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionAddStatement, func() (any, error) {
		st := &Statement{
			VideoID:   videoID,
			SpeakerID: speakerID,
			Text:      text,
			Time:      time,
			AuthorID:  userID,
		}
		if err := s.repo.Create(ctx, st); err != nil {
			return nil, err
		}
		return st, nil
	})
	if err != nil {
		return nil, err
	}

	statement := result.(*Statement)
	log.WithFields(log.Fields{
		"statement_id": statement.ID,
		"video_id":     videoID,
		"user_id":      userID,
	}).Info("Добавлено новое утверждение")
	return statement, nil
}

// EditStatement меняет текст/таймкод утверждения.
// Правка чужого утверждения — отдельное квотируемое действие.
func (s *Service) EditStatement(ctx context.Context, userID, statementID int64, text string, time int) error {
	st, err := s.repo.GetByID(ctx, statementID)
	if err != nil {
		return err
	}

	if st.AuthorID == userID {
		// Своё утверждение правится без квоты
		if err := s.repo.Update(ctx, statementID, text, time); err != nil {
			return err
		}
	} else {
		_, err = s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionEditOtherStatement, func() (any, error) {
			return nil, s.repo.Update(ctx, statementID, text, time)
		})
		if err != nil {
			return err
		}
	}

	s.logHistory(ctx, st.VideoID, userID, "statement_update",
		fmt.Sprintf(`{"statement_id":%d,"time":%d}`, statementID, time))
	return nil
}

// RemoveStatement мягко удаляет утверждение.
func (s *Service) RemoveStatement(ctx context.Context, userID, statementID int64) error {
	st, err := s.repo.GetByID(ctx, statementID)
	if err != nil {
		return err
	}

	_, err = s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionRemoveStatement, func() (any, error) {
		return nil, s.repo.SetRemoved(ctx, statementID, true)
	})
	if err != nil {
		return err
	}

	s.logHistory(ctx, st.VideoID, userID, "statement_remove",
		fmt.Sprintf(`{"statement_id":%d}`, statementID))
	return nil
}

// RestoreStatement восстанавливает удалённое утверждение.
func (s *Service) RestoreStatement(ctx context.Context, userID, statementID int64) error {
	st, err := s.repo.GetByID(ctx, statementID)
	if err != nil {
		return err
	}

	_, err = s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionRestoreStatement, func() (any, error) {
		return nil, s.repo.SetRemoved(ctx, statementID, false)
	})
	if err != nil {
		return err
	}

	s.logHistory(ctx, st.VideoID, userID, "statement_restore",
		fmt.Sprintf(`{"statement_id":%d}`, statementID))
	return nil
}

// GetByID возвращает утверждение по ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*Statement, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByVideo возвращает утверждения видео по таймкоду.
func (s *Service) ListByVideo(ctx context.Context, videoID int64) ([]*Statement, error) {
	return s.repo.ListByVideo(ctx, videoID)
}

// logHistory пишет правку в историю модерации; ошибка не фатальна.
func (s *Service) logHistory(ctx context.Context, videoID, userID int64, actionType, changes string) {
	if err := s.history.LogAction(ctx, videoID, userID, actionType, changes); err != nil {
		log.WithError(err).WithField("action_type", actionType).
			Error("Правка выполнена, но не записана в историю")
	}
}
