package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/iudanet/gophdiary/internal/diary"
)

const (
	// MaxTitleLen максимальная длина заголовка в символах
	MaxTitleLen = 200
	// MinPasswordLen минимальная длина пароля блокировки
	MinPasswordLen = 4
)

// ValidateTitle проверяет заголовок записи после обрезки пробелов.
// Заголовок обязателен, содержимое записи может быть пустым.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)

	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	return nil
}

// ValidateDate проверяет, что дата записи распознается
func ValidateDate(date string) error {
	if _, ok := diary.ParseDate(date); !ok {
		return fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC 3339)", date)
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю блокировки
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateLanguage проверяет тег локали (BCP 47), например "ko" или "en-US"
func ValidateLanguage(tag string) error {
	if tag == "" {
		return fmt.Errorf("language cannot be empty")
	}

	if _, err := language.Parse(tag); err != nil {
		return fmt.Errorf("invalid language tag %q: %w", tag, err)
	}

	return nil
}
