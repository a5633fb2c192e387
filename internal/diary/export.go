package diary

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/iudanet/gophdiary/internal/models"
)

// FormatDate renders an entry date the way toLocaleDateString renders a
// short numeric date for the locale. Unparseable dates are returned as is.
func FormatDate(date, locale string, loc *time.Location) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	if loc != nil && len(strings.TrimSpace(date)) > len("2006-01-02") {
		t = t.In(loc)
	}

	y, m, d := t.Date()
	switch baseLanguage(locale) {
	case "ko":
		return fmt.Sprintf("%d. %d. %d.", y, m, d)
	case "en":
		return fmt.Sprintf("%d/%d/%d", m, d, y)
	case "ja", "zh":
		return fmt.Sprintf("%d/%d/%d", y, m, d)
	case "de", "ru":
		return fmt.Sprintf("%d.%d.%d", d, m, y)
	case "fr", "es", "it":
		return fmt.Sprintf("%d/%d/%d", d, m, y)
	default:
		return t.Format("2006-01-02")
	}
}

// baseLanguage возвращает базовый язык тега ("ko-KR" -> "ko")
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// ExportText renders entries as plain text, one block per entry, in the
// given order:
//
//	<localized-date> - <title>\n\n<content>\n\n---\n\n
func ExportText(entries []models.DiaryEntry, locale string, loc *time.Location) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(FormatDate(e.Date, locale, loc))
		b.WriteString(" - ")
		b.WriteString(e.Title)
		b.WriteString("\n\n")
		b.WriteString(e.Content)
		b.WriteString("\n\n---\n\n")
	}
	return b.String()
}

// ExportFileName returns the default export file name for the day of now.
func ExportFileName(now time.Time) string {
	return "diary_export_" + now.Format("2006-01-02") + ".txt"
}
