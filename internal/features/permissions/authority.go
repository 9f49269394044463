// Package permissions — authority.go реализует учёт использования квот.
// Authority владеет единственным изменяемым состоянием ядра: счётчиками
// «пользователь → действие → сколько раз за сегодня». Состояние живёт
// только в памяти: рестарт процесса означает неявный сброс, это
// принятое поведение, а не дефект.
package permissions

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"checkfact.ru/backend/internal/common"
)

// Authority — авторитет квот. Создаётся один раз при старте процесса
// (в internal/app) и передаётся по ссылке во все сервисы; скрытого
// глобального состояния нет. Сброс счётчиков делает cron-задача раз в сутки,
// освобождение — завершение процесса.
//
// Все операции взаимно атомарны: один sync.Mutex на всё состояние.
// Это сознательный выбор: корректность (никакой гонки между проверкой
// и записью) важнее пропускной способности.
type Authority struct {
	mu          sync.Mutex
	occurrences map[int64]map[Action]int
	loader      UserLoader
}

// NewAuthority создаёт авторитет квот с пустыми счётчиками.
func NewAuthority(loader UserLoader) *Authority {
	return &Authority{
		occurrences: make(map[int64]map[Action]int),
		loader:      loader,
	}
}

// Check проверяет, может ли пользователь выполнить действие.
// Возвращает nil либо одну из ошибок: common.ErrUnknownAction,
// common.ErrInsufficientReputation, common.ErrLimitReached.
// Только чтение — счётчики не меняются.
func (a *Authority) Check(user User, action Action) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.checkLocked(user, action)
	observeCheck(action, err)
	return err
}

// CheckByID — вариант Check по числовому ID: сначала разрешает
// пользователя через UserLoader, затем делегирует.
func (a *Authority) CheckByID(ctx context.Context, userID int64, action Action) error {
	user, err := a.loader.LoadByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("проверка прав: %w", err)
	}
	return a.Check(user, action)
}

// Record безусловно увеличивает счётчик действия на 1. Лимиты НЕ проверяет.
//
// Это быстрый путь для мест, где проверка уже была в том же запросе
// и гонка неопасна (голоса: дубликат всё равно отсечёт уникальный
// индекс в БД). Всё, что создаёт или меняет контент, обязано идти
// через CheckAndExecute.
func (a *Authority) Record(user User, action Action) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recordLocked(user.ID, action)
}

// RecordByID — вариант Record по числовому ID (через UserLoader,
// чтобы не засорять счётчики несуществующими пользователями).
func (a *Authority) RecordByID(ctx context.Context, userID int64, action Action) error {
	user, err := a.loader.LoadByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("запись использования: %w", err)
	}
	a.Record(user, action)
	return nil
}

// CheckAndExecute — безопасная составная операция: проверка, эффект, запись
// как одно атомарное целое относительно всех остальных операций с квотами.
//
//  1. Если проверка не прошла — возвращается её ошибка, effect не вызывается,
//     состояние не меняется.
//  2. Если effect вернул ошибку (или запаниковал) — счётчики не меняются,
//     ошибка/паника уходит вызывающему как есть.
//  3. Если effect завершился успешно — использование записывается и
//     возвращается результат effect.
//
// На время всей последовательности, ВКЛЮЧАЯ effect, блокируются все
// операции авторитета для всех пользователей. Поэтому effect должен быть
// быстрым (одна вставка/обновление в БД); effect, способный зависнуть,
// подвесит всю подсистему квот — таймаутов здесь намеренно нет.
func (a *Authority) CheckAndExecute(user User, action Action, effect func() (any, error)) (any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkLocked(user, action); err != nil {
		observeCheck(action, err)
		return nil, err
	}

	// Паника эффекта пройдёт сквозь defer-анлок: состояние счётчиков
	// не тронуто (запись происходит только после нормального возврата).
	result, err := effect()
	if err != nil {
		observeCheck(action, err)
		return nil, err
	}

	a.recordLocked(user.ID, action)
	observeCheck(action, nil)
	return result, nil
}

// CheckAndExecuteByID — вариант CheckAndExecute по числовому ID.
// Пользователь загружается ДО входа в критическую секцию, чтобы
// не держать мьютекс на время запроса к БД.
func (a *Authority) CheckAndExecuteByID(ctx context.Context, userID int64, action Action, effect func() (any, error)) (any, error) {
	user, err := a.loader.LoadByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("проверка прав: %w", err)
	}
	return a.CheckAndExecute(user, action, effect)
}

// Occurrences возвращает текущий счётчик действия пользователя
// (0, если записей не было). Читает согласованный снимок.
func (a *Authority) Occurrences(user User, action Action) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.occurrences[user.ID][action]
}

// Reset заменяет всё состояние пустым. Вызывается cron-задачей раз в сутки
// в полночь; повторные/конкурентные вызовы идемпотентны. Возвращает,
// у скольких пользователей были счётчики (для лога).
func (a *Authority) Reset() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	tracked := len(a.occurrences)
	a.occurrences = make(map[int64]map[Action]int)
	resetsTotal.Inc()

	log.WithField("tracked_users", tracked).Info("Счётчики квот сброшены")
	return tracked
}

// checkLocked — проверка под уже взятым мьютексом.
// Порядок: каталог → порог репутации → лимит уровня.
func (a *Authority) checkLocked(user User, action Action) error {
	minRep, err := MinReputation(action)
	if err != nil {
		return err
	}
	if user.Reputation < minRep {
		return fmt.Errorf("%w: %s требует %d, у пользователя %d",
			common.ErrInsufficientReputation, action, minRep, user.Reputation)
	}

	limit, err := Limit(user, action)
	if err != nil {
		return err
	}
	if a.occurrences[user.ID][action] >= limit {
		return fmt.Errorf("%w: %s, лимит %d", common.ErrLimitReached, action, limit)
	}
	return nil
}

// recordLocked — инкремент под уже взятым мьютексом,
// с ленивым созданием вложенной карты.
func (a *Authority) recordLocked(userID int64, action Action) {
	byAction, ok := a.occurrences[userID]
	if !ok {
		byAction = make(map[Action]int)
		a.occurrences[userID] = byAction
	}
	byAction[action]++
}
