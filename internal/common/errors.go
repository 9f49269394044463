// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях бэкенда.
// Эти ошибки позволяют обработчикам запросов различать типы проблем
// и переводить их в понятные ответы API ("forbidden" с причиной).
package common

import "errors"

// Ошибки квот и прав (ядро permissions)
var (
	// ErrUnknownAction — действие отсутствует в таблицах политики.
	// Это ошибка программиста или конфигурации, а не пользователя.
	ErrUnknownAction = errors.New("неизвестное действие")
	// ErrInsufficientReputation — репутация пользователя ниже порога действия
	ErrInsufficientReputation = errors.New("недостаточно репутации для этого действия")
	// ErrLimitReached — дневной лимит действий этого типа исчерпан
	ErrLimitReached = errors.New("дневной лимит действий исчерпан")
)

// Ошибки пользователей
var (
	// ErrUserNotFound — пользователь не найден в базе
	ErrUserNotFound = errors.New("пользователь не найден")
	// ErrUsernameTaken — имя пользователя уже занято
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
	// ErrWrongPassword — неверный пароль
	ErrWrongPassword = errors.New("неверный пароль")
	// ErrPasswordTooShort — пароль короче 6 символов
	ErrPasswordTooShort = errors.New("пароль слишком короткий (минимум 6 символов)")
)

// Ошибки комментариев и голосов
var (
	// ErrCommentEmpty — пустой текст комментария без источника
	ErrCommentEmpty = errors.New("комментарий должен содержать текст или источник")
	// ErrSelfVote — попытка проголосовать за свой комментарий
	ErrSelfVote = errors.New("нельзя голосовать за свой комментарий")
	// ErrAlreadyVoted — уже голосовали за этот комментарий
	ErrAlreadyVoted = errors.New("вы уже голосовали за этот комментарий")
	// ErrAlreadyFlagged — уже жаловались на этот комментарий
	ErrAlreadyFlagged = errors.New("вы уже отправляли жалобу на этот комментарий")
)

// Ошибки утверждений и спикеров
var (
	// ErrStatementNotFound — утверждение не найдено или удалено
	ErrStatementNotFound = errors.New("утверждение не найдено")
	// ErrStatementNotRemoved — попытка восстановить неудалённое утверждение
	ErrStatementNotRemoved = errors.New("утверждение не было удалено")
	// ErrSpeakerNotFound — спикер не найден
	ErrSpeakerNotFound = errors.New("спикер не найден")
	// ErrSpeakerNotRemoved — попытка восстановить неудалённого спикера
	ErrSpeakerNotRemoved = errors.New("спикер не был удалён")
)

// Ошибки модерации
var (
	// ErrHistoryActionNotFound — запись истории не найдена
	ErrHistoryActionNotFound = errors.New("запись истории не найдена")
	// ErrHistoryActionReviewed — запись истории уже рассмотрена модератором
	ErrHistoryActionReviewed = errors.New("запись истории уже рассмотрена")
)
