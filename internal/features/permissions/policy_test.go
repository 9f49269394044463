package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkfact.ru/backend/internal/common"
)

func TestTierIndex(t *testing.T) {
	tests := []struct {
		reputation int
		want       int
	}{
		{-1000, TierNegative},
		{-42, TierNegative},
		{-1, TierNegative},
		{0, TierNewUser},
		{42, TierNewUser},
		{ConfirmedThreshold, TierNewUser},
		{ConfirmedThreshold + 1, TierConfirmed},
		{1000, TierConfirmed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierIndex(tt.reputation), "репутация %d", tt.reputation)
	}
}

// Рост репутации никогда не уменьшает лимит — ни для одного действия.
func TestLimitsMonotonicAcrossTiers(t *testing.T) {
	for _, action := range Actions() {
		limits := Limitations()[action]
		assert.LessOrEqual(t, limits[TierNegative], limits[TierNewUser], "%s", action)
		assert.LessOrEqual(t, limits[TierNewUser], limits[TierConfirmed], "%s", action)
	}
}

func TestPolicyTablesCoverCatalog(t *testing.T) {
	for _, action := range Actions() {
		_, err := MinReputation(action)
		require.NoError(t, err, "%s без порога репутации", action)

		_, err = Limit(User{ID: 1, Reputation: 0}, action)
		require.NoError(t, err, "%s без лимитов", action)
	}
}

func TestUnknownActionRejected(t *testing.T) {
	unknown := Action(999)

	_, err := MinReputation(unknown)
	assert.ErrorIs(t, err, common.ErrUnknownAction)

	_, err = Limit(User{ID: 1, Reputation: 100}, unknown)
	assert.ErrorIs(t, err, common.ErrUnknownAction)
}

func TestLimitPicksTierByReputation(t *testing.T) {
	limits := Limitations()[ActionAddComment]

	tests := []struct {
		reputation int
		want       int
	}{
		{-10, limits[TierNegative]},
		{10, limits[TierNewUser]},
		{90, limits[TierConfirmed]},
	}
	for _, tt := range tests {
		got, err := Limit(User{ID: 1, Reputation: tt.reputation}, ActionAddComment)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "репутация %d", tt.reputation)
	}
}

// Интроспекция отдаёт копии: мутация результата не трогает таблицы.
func TestIntrospectionReturnsCopies(t *testing.T) {
	limits := Limitations()
	limits[ActionAddComment] = [3]int{0, 0, 0}
	fresh, err := Limit(User{ID: 1, Reputation: 10}, ActionAddComment)
	require.NoError(t, err)
	assert.NotZero(t, fresh)

	mins := MinReputations()
	mins[ActionFlagComment] = -100
	freshMin, err := MinReputation(ActionFlagComment)
	require.NoError(t, err)
	assert.Equal(t, 40, freshMin)
}

func TestParseAction(t *testing.T) {
	action, err := ParseAction("flag_comment")
	require.NoError(t, err)
	assert.Equal(t, ActionFlagComment, action)

	_, err = ParseAction("eat_unicorn")
	assert.ErrorIs(t, err, common.ErrUnknownAction)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "add_comment", ActionAddComment.String())
	assert.Equal(t, "unknown_action(999)", Action(999).String())
}
