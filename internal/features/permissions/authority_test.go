package permissions

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkfact.ru/backend/internal/common"
)

// stubLoader — загрузчик пользователей для тестов (без БД).
type stubLoader struct {
	users map[int64]User
}

func (s *stubLoader) LoadByID(_ context.Context, id int64) (User, error) {
	user, ok := s.users[id]
	if !ok {
		return User{}, common.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthority(users ...User) *Authority {
	loader := &stubLoader{users: make(map[int64]User)}
	for _, u := range users {
		loader.users[u.ID] = u
	}
	return NewAuthority(loader)
}

func TestCheckUnknownAction(t *testing.T) {
	a := newTestAuthority()
	// Неизвестное действие отклоняется для любого пользователя
	assert.ErrorIs(t, a.Check(User{ID: 1, Reputation: -100}, Action(999)), common.ErrUnknownAction)
	assert.ErrorIs(t, a.Check(User{ID: 2, Reputation: 10000}, Action(999)), common.ErrUnknownAction)
}

func TestCheckInsufficientReputation(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: -42}

	err := a.Check(user, ActionRemoveStatement)
	assert.ErrorIs(t, err, common.ErrInsufficientReputation)
	assert.NotErrorIs(t, err, common.ErrLimitReached)
}

// Сценарий: репутация 42, flag_comment (порог 40, лимит новичка 1).
// Первая проверка проходит, после одной записи — лимит, после сброса — снова проходит.
func TestScenarioFlagComment(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 42}

	require.NoError(t, a.Check(user, ActionFlagComment))

	a.Record(user, ActionFlagComment)
	assert.Equal(t, 1, a.Occurrences(user, ActionFlagComment))
	assert.ErrorIs(t, a.Check(user, ActionFlagComment), common.ErrLimitReached)

	a.Reset()
	assert.Equal(t, 0, a.Occurrences(user, ActionFlagComment))
	assert.NoError(t, a.Check(user, ActionFlagComment))
}

func TestCheckDoesNotMutate(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 10}

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Check(user, ActionAddComment))
	}
	assert.Equal(t, 0, a.Occurrences(user, ActionAddComment))
}

func TestLimitReachedAfterExactlyCapRecords(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 10}
	limit, err := Limit(user, ActionAddComment)
	require.NoError(t, err)

	for i := 0; i < limit; i++ {
		require.NoError(t, a.Check(user, ActionAddComment), "запись %d из %d", i, limit)
		a.Record(user, ActionAddComment)
	}

	assert.Equal(t, limit, a.Occurrences(user, ActionAddComment))
	assert.ErrorIs(t, a.Check(user, ActionAddComment), common.ErrLimitReached)
}

func TestCheckAndExecuteSuccess(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 42}

	result, err := a.CheckAndExecute(user, ActionAddComment, func() (any, error) {
		return "created", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "created", result)
	assert.Equal(t, 1, a.Occurrences(user, ActionAddComment))
}

func TestCheckAndExecuteDeniedSkipsEffect(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: -42}

	invoked := false
	_, err := a.CheckAndExecute(user, ActionAddVideo, func() (any, error) {
		invoked = true
		return nil, nil
	})
	assert.ErrorIs(t, err, common.ErrInsufficientReputation)
	assert.False(t, invoked, "эффект не должен вызываться при отказе")
	assert.Equal(t, 0, a.Occurrences(user, ActionAddVideo))
}

// Всё или ничего: ошибка эффекта уходит вызывающему как есть,
// использование не записывается.
func TestCheckAndExecuteEffectErrorNotRecorded(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 42}
	errEffect := errors.New("insert failed")

	_, err := a.CheckAndExecute(user, ActionAddComment, func() (any, error) {
		return nil, errEffect
	})
	assert.ErrorIs(t, err, errEffect)
	assert.NotErrorIs(t, err, common.ErrLimitReached)
	assert.Equal(t, 0, a.Occurrences(user, ActionAddComment))
}

// Паника эффекта уходит вызывающему, состояние не повреждено,
// авторитет остаётся работоспособным (мьютекс освобождён).
func TestCheckAndExecuteEffectPanic(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 42}

	require.Panics(t, func() {
		a.CheckAndExecute(user, ActionAddComment, func() (any, error) {
			panic("boom")
		})
	})

	assert.Equal(t, 0, a.Occurrences(user, ActionAddComment))
	// Авторитет жив: следующая операция работает
	_, err := a.CheckAndExecute(user, ActionAddComment, func() (any, error) {
		return nil, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, a.Occurrences(user, ActionAddComment))
}

// На последний слот квоты претендуют 32 горутины — успеть должна ровно одна.
func TestConcurrentCheckAndExecuteSingleSlot(t *testing.T) {
	a := newTestAuthority()
	// Новичок: лимит flag_comment равен 1
	user := User{ID: 1, Reputation: 42}

	const goroutines = 32
	var successes, limited atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.CheckAndExecute(user, ActionFlagComment, func() (any, error) {
				return nil, nil
			})
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, common.ErrLimitReached):
				limited.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), successes.Load(), "успех должен быть ровно один")
	assert.Equal(t, int64(goroutines-1), limited.Load())
	assert.Equal(t, 1, a.Occurrences(user, ActionFlagComment))
}

func TestByIDResolvesThroughLoader(t *testing.T) {
	a := newTestAuthority(User{ID: 7, Reputation: 42})
	ctx := context.Background()

	require.NoError(t, a.CheckByID(ctx, 7, ActionAddComment))

	result, err := a.CheckAndExecuteByID(ctx, 7, ActionAddComment, func() (any, error) {
		return 123, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 123, result)

	require.NoError(t, a.RecordByID(ctx, 7, ActionAddComment))
	assert.Equal(t, 2, a.Occurrences(User{ID: 7}, ActionAddComment))
}

// Отсутствующий пользователь — отдельная ошибка, не квотная.
func TestByIDUserNotFound(t *testing.T) {
	a := newTestAuthority()
	ctx := context.Background()

	err := a.CheckByID(ctx, 404, ActionAddComment)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	assert.NotErrorIs(t, err, common.ErrInsufficientReputation)

	_, err = a.CheckAndExecuteByID(ctx, 404, ActionAddComment, func() (any, error) {
		t.Fatal("эффект не должен вызываться без пользователя")
		return nil, nil
	})
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	assert.ErrorIs(t, a.RecordByID(ctx, 404, ActionAddComment), common.ErrUserNotFound)
}

func TestResetIdempotent(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 42}
	a.Record(user, ActionVoteUp)

	assert.Equal(t, 1, a.Reset())
	assert.Equal(t, 0, a.Reset())
	assert.Equal(t, 0, a.Occurrences(user, ActionVoteUp))
}

func TestOccurrencesDefaultZero(t *testing.T) {
	a := newTestAuthority()
	assert.Equal(t, 0, a.Occurrences(User{ID: 99, Reputation: 10}, ActionAddVideo))
}

// Record намеренно не проверяет лимит: счётчик может уйти выше cap,
// но Check после этого стабильно возвращает лимит.
func TestRecordIsUnconditional(t *testing.T) {
	a := newTestAuthority()
	user := User{ID: 1, Reputation: 42}
	limit, err := Limit(user, ActionFlagComment)
	require.NoError(t, err)

	for i := 0; i < limit+3; i++ {
		a.Record(user, ActionFlagComment)
	}
	assert.Equal(t, limit+3, a.Occurrences(user, ActionFlagComment))
	assert.ErrorIs(t, a.Check(user, ActionFlagComment), common.ErrLimitReached)
}
