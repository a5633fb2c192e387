package models

// Mood свободное описание настроения записи.
// Известные значения перечислены ниже, но допускается любая строка.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
	MoodExcited Mood = "excited"
	MoodAngry   Mood = "angry"
)

// DiaryEntry представляет одну запись дневника.
// Имена JSON полей являются контрактом совместимости хранилища.
type DiaryEntry struct {
	ID        string   `json:"id"`                 // ID неизменяемый уникальный идентификатор
	Title     string   `json:"title"`              // Title заголовок записи
	Content   string   `json:"content"`            // Content текст записи, может быть пустым
	Date      string   `json:"date"`               // Date календарная дата записи (ISO 8601)
	Mood      Mood     `json:"mood,omitempty"`     // Mood настроение (опционально)
	Weather   string   `json:"weather,omitempty"`  // Weather погода (опционально)
	Location  string   `json:"location,omitempty"` // Location место (опционально)
	Photos    []string `json:"photos"`             // Photos ссылки на фото в порядке показа
	CreatedAt int64    `json:"createdAt"`          // CreatedAt время создания, epoch ms
	UpdatedAt int64    `json:"updatedAt"`          // UpdatedAt время последнего изменения, epoch ms
}

// EntryDraft содержит поля новой записи, которые задает пользователь.
// ID и временные метки назначаются хранилищем.
type EntryDraft struct {
	Title    string
	Content  string
	Date     string
	Mood     Mood
	Weather  string
	Location string
	Photos   []string
}

// Clone создает глубокую копию записи (включая срез Photos)
func (e DiaryEntry) Clone() DiaryEntry {
	if e.Photos != nil {
		photos := make([]string, len(e.Photos))
		copy(photos, e.Photos)
		e.Photos = photos
	}
	return e
}

// CloneEntries копирует срез записей целиком
func CloneEntries(entries []DiaryEntry) []DiaryEntry {
	out := make([]DiaryEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
