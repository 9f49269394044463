// Package common содержит общие утилиты, используемые во всём проекте.
// Сюда входят: работа с часовым поясом и русская плюрализация для логов.
package common

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// LoadTimezone загружает часовой пояс по имени из конфигурации.
// Если пояс не удалось загрузить — возвращает UTC, чтобы cron-задачи
// всё равно запускались (пусть и не в местную полночь).
func LoadTimezone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.WithError(err).Warnf("Не удалось загрузить часовой пояс %q, используем UTC", name)
		return time.UTC
	}
	return loc
}

// PluralizeUsers возвращает правильную форму слова «пользователь» для числа n.
//
// Правила русского языка:
//   - n%10==1 И n%100!=11 → "пользователь" (1, 21, 31, 101, ...)
//   - n%10 в [2,3,4] И n%100 НЕ в [12,13,14] → "пользователя" (2, 3, 4, 22, ...)
//   - Остальные случаи → "пользователей" (0, 5-20, 25-30, 100, ...)
func PluralizeUsers(n int) string {
	absN := n
	if absN < 0 {
		absN = -absN
	}
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return "пользователь"
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return "пользователя"
	}
	return "пользователей"
}
