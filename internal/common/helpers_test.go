package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPluralizeUsers(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "пользователей"},
		{1, "пользователь"},
		{2, "пользователя"},
		{5, "пользователей"},
		{11, "пользователей"},
		{21, "пользователь"},
		{22, "пользователя"},
		{114, "пользователей"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralizeUsers(tt.n), "n=%d", tt.n)
	}
}

func TestLoadTimezone(t *testing.T) {
	assert.Equal(t, "Europe/Moscow", LoadTimezone("Europe/Moscow").String())
	// Неизвестный пояс — откат на UTC, не паника
	assert.Equal(t, time.UTC, LoadTimezone("Nowhere/Unknown"))
}
