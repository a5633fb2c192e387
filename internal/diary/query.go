package diary

import (
	"slices"
	"strings"
	"time"

	"github.com/iudanet/gophdiary/internal/models"
)

// dateLayouts are tried in order when parsing DiaryEntry.Date.
// Values without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an entry date. ok is false when no layout matches.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// dateKey — момент времени для сортировки; нераспознанная дата считается самой старой
func dateKey(e models.DiaryEntry) time.Time {
	t, _ := ParseDate(e.Date)
	return t
}

// Matches reports whether title or content contains query, ignoring case.
// A blank query matches everything.
func Matches(e models.DiaryEntry, query string) bool {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Content), q)
}

// RelevanceScore is 2 for a title match plus 1 for a content match.
func RelevanceScore(e models.DiaryEntry, query string) int {
	q := strings.ToLower(query)
	score := 0
	if strings.Contains(strings.ToLower(e.Title), q) {
		score += 2
	}
	if strings.Contains(strings.ToLower(e.Content), q) {
		score++
	}
	return score
}

// Query derives the filtered and sorted view of entries. It never modifies
// entries and returns a new slice.
//
// SortByDate orders by date, newest first, keeping input order for equal
// dates. SortByRelevance orders by RelevanceScore, highest first, then by
// date; with a blank query it is the same as SortByDate.
func Query(entries []models.DiaryEntry, query string, mode models.SortMode) []models.DiaryEntry {
	blank := strings.TrimSpace(query) == ""

	type keyed struct {
		entry models.DiaryEntry
		date  time.Time
		score int
	}

	view := make([]keyed, 0, len(entries))
	for _, e := range entries {
		if !blank && !Matches(e, query) {
			continue
		}
		k := keyed{entry: e.Clone(), date: dateKey(e)}
		if !blank && mode == models.SortByRelevance {
			k.score = RelevanceScore(e, query)
		}
		view = append(view, k)
	}

	// Стабильная сортировка: при равных ключах сохраняется порядок коллекции
	slices.SortStableFunc(view, func(a, b keyed) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return b.date.Compare(a.date)
	})

	out := make([]models.DiaryEntry, len(view))
	for i, k := range view {
		out[i] = k.entry
	}
	return out
}

// DaySummary aggregates the entries of one calendar day.
type DaySummary struct {
	Day     time.Time // midnight of the day in the requested location
	Count   int
	Preview string // title of the newest entry that day
}

// dayOf returns the calendar day of the entry date in loc.
// Date-only values ("2024-01-01") keep their literal day in every location.
func dayOf(e models.DiaryEntry, loc *time.Location) (time.Time, bool) {
	t, ok := ParseDate(e.Date)
	if !ok {
		return time.Time{}, false
	}
	if len(strings.TrimSpace(e.Date)) > len("2006-01-02") {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
}

// EntriesOn returns the entries whose date falls on day, newest first.
func EntriesOn(entries []models.DiaryEntry, day time.Time, loc *time.Location) []models.DiaryEntry {
	day = day.In(loc)
	want := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	var matched []models.DiaryEntry
	for _, e := range entries {
		if d, ok := dayOf(e, loc); ok && d.Equal(want) {
			matched = append(matched, e)
		}
	}
	return Query(matched, "", models.SortByDate)
}

// Days groups entries by calendar day, newest day first. Entries with an
// unparseable date are skipped.
func Days(entries []models.DiaryEntry, loc *time.Location) []DaySummary {
	sorted := Query(entries, "", models.SortByDate)

	var days []DaySummary
	index := make(map[time.Time]int)
	for _, e := range sorted {
		d, ok := dayOf(e, loc)
		if !ok {
			continue
		}
		if i, seen := index[d]; seen {
			days[i].Count++
			continue
		}
		index[d] = len(days)
		days = append(days, DaySummary{Day: d, Count: 1, Preview: e.Title})
	}

	slices.SortStableFunc(days, func(a, b DaySummary) int {
		return b.Day.Compare(a.Day)
	})
	return days
}
