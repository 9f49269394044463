// Package permissions — policy.go содержит таблицы политики:
// минимальную репутацию на действие и трёхуровневую таблицу дневных лимитов.
// Таблицы неизменяемые, все функции чистые — синхронизация не нужна.
package permissions

import (
	"fmt"

	"checkfact.ru/backend/internal/common"
)

const (
	// ConfirmedThreshold — порог репутации, выше которого пользователь
	// считается «подтверждённым» и получает самые щедрые лимиты.
	ConfirmedThreshold = 50

	// NoLimit — страж «практически без лимита». Заведомо больше любой
	// реальной дневной активности, но остаётся настоящей границей,
	// чтобы счётчики и проверки вели себя одинаково для всех действий.
	NoLimit = 1000
)

// Индексы уровней в тройке лимитов.
const (
	// TierNegative — отрицательная репутация (ограниченный режим)
	TierNegative = 0
	// TierNewUser — репутация от 0 до ConfirmedThreshold включительно
	TierNewUser = 1
	// TierConfirmed — репутация выше ConfirmedThreshold
	TierConfirmed = 2
)

// minReputations — минимальная репутация на действие.
// Отрицательный порог означает, что действие доступно даже «оштрафованным».
var minReputations = map[Action]int{
	ActionAddComment:           -5,
	ActionAddVideo:             15,
	ActionVoteUp:               0,
	ActionVoteDown:             25,
	ActionApproveHistoryAction: 75,
	ActionFlagHistoryAction:    75,
	ActionAddStatement:         0,
	ActionEditOtherStatement:   50,
	ActionRemoveStatement:      0,
	ActionRestoreStatement:     25,
	ActionAddSpeaker:           30,
	ActionRemoveSpeaker:        75,
	ActionEditSpeaker:          30,
	ActionRestoreSpeaker:       75,
	ActionFlagComment:          40,
}

// limitations — дневные лимиты по уровням: {отрицательная, новичок, подтверждённый}.
var limitations = map[Action][3]int{
	ActionAddComment:           {3, 20, 100},
	ActionAddVideo:             {0, 5, 50},
	ActionVoteUp:               {3, 30, NoLimit},
	ActionVoteDown:             {0, 15, 100},
	ActionApproveHistoryAction: {0, 10, NoLimit},
	ActionFlagHistoryAction:    {0, 5, 30},
	ActionAddStatement:         {0, 10, 100},
	ActionEditOtherStatement:   {0, 5, 50},
	ActionRemoveStatement:      {0, 5, 30},
	ActionRestoreStatement:     {0, 5, 30},
	ActionAddSpeaker:           {0, 10, 50},
	ActionRemoveSpeaker:        {0, 5, 30},
	ActionEditSpeaker:          {0, 10, 50},
	ActionRestoreSpeaker:       {0, 5, 30},
	// Жалобы намеренно редкие: новичок — одна в день
	ActionFlagComment: {0, 1, 5},
}

// TierIndex возвращает индекс уровня лимитов по репутации.
// Чистая тотальная функция: зависит только от репутации.
func TierIndex(reputation int) int {
	switch {
	case reputation < 0:
		return TierNegative
	case reputation <= ConfirmedThreshold:
		return TierNewUser
	default:
		return TierConfirmed
	}
}

// MinReputation возвращает минимальную репутацию для действия.
func MinReputation(action Action) (int, error) {
	min, ok := minReputations[action]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownAction, action)
	}
	return min, nil
}

// Limit возвращает дневной лимит действия для уровня пользователя.
func Limit(user User, action Action) (int, error) {
	limits, ok := limitations[action]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownAction, action)
	}
	return limits[TierIndex(user.Reputation)], nil
}

// Limitations возвращает копию таблицы лимитов (для отображения в UI).
func Limitations() map[Action][3]int {
	out := make(map[Action][3]int, len(limitations))
	for a, l := range limitations {
		out[a] = l
	}
	return out
}

// MinReputations возвращает копию таблицы минимальной репутации.
func MinReputations() map[Action]int {
	out := make(map[Action]int, len(minReputations))
	for a, m := range minReputations {
		out[a] = m
	}
	return out
}
