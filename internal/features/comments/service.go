// Package comments — service.go содержит бизнес-логику комментариев,
// голосов и жалоб. Голос меняет репутацию автора комментария.
package comments

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/common"
	"checkfact.ru/backend/internal/features/permissions"
	"checkfact.ru/backend/internal/features/users"
)

// Service управляет комментариями.
type Service struct {
	repo  *Repository
	perms *permissions.Authority
	users *users.Service
}

// NewService создаёт сервис комментариев.
func NewService(repo *Repository, perms *permissions.Authority, usersService *users.Service) *Service {
	return &Service{repo: repo, perms: perms, users: usersService}
}

// AddComment добавляет комментарий к утверждению.
// Комментарий обязан содержать текст или источник.
func (s *Service) AddComment(ctx context.Context, userID, statementID int64, replyToID *int64, text string, source *string) (*Comment, error) {
	if strings.TrimSpace(text) == "" && source == nil {
		return nil, common.ErrCommentEmpty
	}

	result, err := s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionAddComment, func() (any, error) {
		c := &Comment{
			StatementID: statementID,
			UserID:      userID,
			ReplyToID:   replyToID,
			Text:        text,
			Source:      source,
		}
		if err := s.repo.Create(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	comment := result.(*Comment)
	log.WithFields(log.Fields{
		"comment_id":   comment.ID,
		"statement_id": statementID,
		"user_id":      userID,
	}).Info("Добавлен новый комментарий")
	return comment, nil
}

// VoteUp — голос «за»: +2 к репутации автора комментария.
func (s *Service) VoteUp(ctx context.Context, userID, commentID int64) error {
	return s.vote(ctx, userID, commentID, 1, permissions.ActionVoteUp, ReputationPerUpvote)
}

// VoteDown — голос «против»: -1 к репутации автора комментария.
func (s *Service) VoteDown(ctx context.Context, userID, commentID int64) error {
	return s.vote(ctx, userID, commentID, -1, permissions.ActionVoteDown, ReputationPerDownvote)
}

// vote — общий путь голосования. Здесь сознательно используется пара
// Check + Record вместо CheckAndExecute: дубликат голоса всё равно
// отсекает уникальный индекс в БД, поэтому гонка за последний слот
// квоты неопасна, а держать мьютекс на время транзакции не нужно.
func (s *Service) vote(ctx context.Context, userID, commentID int64, value int, action permissions.Action, repDelta int) error {
	voter, err := s.users.LoadByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.perms.Check(voter, action); err != nil {
		return err
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID == userID {
		return common.ErrSelfVote
	}

	if err := s.repo.CreateVote(ctx, commentID, userID, value); err != nil {
		return err
	}
	s.perms.Record(voter, action)

	// Репутация автора — побочный эффект голоса; её сбой не откатывает голос
	reason := action.String()
	if err := s.users.AdjustReputation(ctx, comment.UserID, &userID, repDelta, reason); err != nil {
		log.WithError(err).WithField("comment_id", commentID).
			Error("Голос записан, но репутация автора не обновлена")
	}
	return nil
}

// FlagComment — жалоба на комментарий. Квотируется жёстко (новичку — одна
// в день), поэтому идёт через атомарный путь.
func (s *Service) FlagComment(ctx context.Context, userID, commentID int64, reason string) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID == userID {
		// Жалоба на свой комментарий бессмысленна, трактуем как самоголос
		return common.ErrSelfVote
	}

	_, err = s.perms.CheckAndExecuteByID(ctx, userID, permissions.ActionFlagComment, func() (any, error) {
		return nil, s.repo.CreateFlag(ctx, commentID, userID, reason)
	})
	return err
}

// ListByStatement возвращает комментарии утверждения.
func (s *Service) ListByStatement(ctx context.Context, statementID int64) ([]*Comment, error) {
	return s.repo.ListByStatement(ctx, statementID)
}
