package cli

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/gophdiary/internal/diary"
	"github.com/iudanet/gophdiary/internal/models"
	"github.com/iudanet/gophdiary/internal/photo"
)

// isoMillis формат даты новой записи (как Date.toISOString)
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

const previewLen = 48

func (c *Cli) formatDate(date string) string {
	return diary.FormatDate(date, c.store.Settings().Language, c.store.Location())
}

func (c *Cli) relTime(ms int64) string {
	return humanize.RelTime(time.UnixMilli(ms), c.now(), "ago", "from now")
}

// preview возвращает первую строку текста, обрезанную до n символов
func preview(s string, n int) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "\n")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

func (c *Cli) printEntryLine(e models.DiaryEntry) {
	c.io.Printf("%s  %s  %s", e.ID, c.formatDate(e.Date), e.Title)
	if e.Mood != "" {
		c.io.Printf("  [%s]", e.Mood)
	}
	c.io.Printf("  (updated %s)\n", c.relTime(e.UpdatedAt))
	if p := preview(e.Content, previewLen); p != "" {
		c.io.Printf("    %s\n", p)
	}
}

func (c *Cli) printEntry(e models.DiaryEntry) {
	c.io.Printf("%s - %s\n", c.formatDate(e.Date), e.Title)
	c.io.Printf("ID:       %s\n", e.ID)
	if e.Mood != "" {
		c.io.Printf("Mood:     %s\n", e.Mood)
	}
	if e.Weather != "" {
		c.io.Printf("Weather:  %s\n", e.Weather)
	}
	if e.Location != "" {
		c.io.Printf("Location: %s\n", e.Location)
	}
	c.io.Printf("Created:  %s\n", c.relTime(e.CreatedAt))
	c.io.Printf("Updated:  %s\n", c.relTime(e.UpdatedAt))

	if len(e.Photos) > 0 {
		c.io.Printf("Photos:   %d\n", len(e.Photos))
		for i, ref := range e.Photos {
			c.io.Printf("  %d. %s\n", i+1, describePhoto(ref))
		}
	}

	c.io.Println()
	c.io.Println(e.Content)
}

func describePhoto(ref string) string {
	info := photo.Describe(ref)
	switch info.Kind {
	case photo.KindData:
		return "inline " + info.MIME + ", " + humanize.Bytes(uint64(info.Size))
	case photo.KindFile, photo.KindURL:
		return ref
	default:
		return preview(ref, previewLen)
	}
}
