// Package permissions реализует ядро прав и квот: каждое изменяющее действие
// пользователя проверяется на минимальную репутацию и дневной лимит.
// models.go описывает каталог действий и минимальное представление пользователя.
package permissions

import (
	"context"
	"fmt"

	"checkfact.ru/backend/internal/common"
)

// Action — тип изменяющего действия пользователя.
// Закрытое перечисление: набор фиксируется на этапе компиляции,
// действие вне каталога невалидно (нулевое значение — тоже).
type Action int

const (
	// ActionAddComment — добавить комментарий к утверждению
	ActionAddComment Action = iota + 1
	// ActionAddVideo — добавить видео в каталог
	ActionAddVideo
	// ActionVoteUp — проголосовать «за» комментарий
	ActionVoteUp
	// ActionVoteDown — проголосовать «против» комментария
	ActionVoteDown
	// ActionApproveHistoryAction — одобрить запись истории правок
	ActionApproveHistoryAction
	// ActionFlagHistoryAction — пожаловаться на запись истории правок
	ActionFlagHistoryAction
	// ActionAddStatement — добавить утверждение к видео
	ActionAddStatement
	// ActionEditOtherStatement — отредактировать чужое утверждение
	ActionEditOtherStatement
	// ActionRemoveStatement — удалить утверждение (мягкое удаление)
	ActionRemoveStatement
	// ActionRestoreStatement — восстановить удалённое утверждение
	ActionRestoreStatement
	// ActionAddSpeaker — добавить спикера
	ActionAddSpeaker
	// ActionRemoveSpeaker — удалить спикера (мягкое удаление)
	ActionRemoveSpeaker
	// ActionEditSpeaker — отредактировать спикера
	ActionEditSpeaker
	// ActionRestoreSpeaker — восстановить удалённого спикера
	ActionRestoreSpeaker
	// ActionFlagComment — пожаловаться на комментарий
	ActionFlagComment
)

// actionNames — имена действий для логов, метрик и внешнего ввода.
var actionNames = map[Action]string{
	ActionAddComment:           "add_comment",
	ActionAddVideo:             "add_video",
	ActionVoteUp:               "vote_up",
	ActionVoteDown:             "vote_down",
	ActionApproveHistoryAction: "approve_history_action",
	ActionFlagHistoryAction:    "flag_history_action",
	ActionAddStatement:         "add_statement",
	ActionEditOtherStatement:   "edit_other_statement",
	ActionRemoveStatement:      "remove_statement",
	ActionRestoreStatement:     "restore_statement",
	ActionAddSpeaker:           "add_speaker",
	ActionRemoveSpeaker:        "remove_speaker",
	ActionEditSpeaker:          "edit_speaker",
	ActionRestoreSpeaker:       "restore_speaker",
	ActionFlagComment:          "flag_comment",
}

// String возвращает snake_case-имя действия.
// Для значения вне каталога возвращает "unknown_action(N)".
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown_action(%d)", int(a))
}

// ParseAction преобразует внешнее строковое имя в Action.
// Неизвестное имя — common.ErrUnknownAction.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnknownAction, name)
}

// Actions возвращает все действия каталога в порядке объявления.
// Используется для интроспекции (отображение лимитов в UI) и в тестах.
func Actions() []Action {
	return []Action{
		ActionAddComment,
		ActionAddVideo,
		ActionVoteUp,
		ActionVoteDown,
		ActionApproveHistoryAction,
		ActionFlagHistoryAction,
		ActionAddStatement,
		ActionEditOtherStatement,
		ActionRemoveStatement,
		ActionRestoreStatement,
		ActionAddSpeaker,
		ActionRemoveSpeaker,
		ActionEditSpeaker,
		ActionRestoreSpeaker,
		ActionFlagComment,
	}
}

// User — минимальное представление пользователя, достаточное для проверки прав.
// Репутация ведётся в модуле users; ядро permissions её только читает.
type User struct {
	ID         int64
	Reputation int
}

// UserLoader разрешает числовой ID в пользователя.
// Реализуется сервисом users; ядро permissions не знает про БД.
type UserLoader interface {
	// LoadByID возвращает пользователя или ошибку с common.ErrUserNotFound,
	// если такого пользователя нет.
	LoadByID(ctx context.Context, id int64) (User, error)
}
