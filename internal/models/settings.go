package models

// Theme тема оформления приложения
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// ExportFormat формат экспорта записей
type ExportFormat string

const (
	ExportFormatText ExportFormat = "text"
	ExportFormatPDF  ExportFormat = "pdf"
)

// Valid reports whether f is one of the known export formats.
func (f ExportFormat) Valid() bool {
	return f == ExportFormatText || f == ExportFormatPDF
}

// DefaultLanguage язык по умолчанию
const DefaultLanguage = "ko"

// AppSettings глобальные настройки приложения (одна запись на процесс).
//
// Password хранит argon2id хеш пароля блокировки, а не сам пароль.
// Старые данные с паролем в открытом виде по-прежнему читаются.
type AppSettings struct {
	Theme        Theme        `json:"theme"`              // Theme light, dark или system
	Password     string       `json:"password,omitempty"` // Password хеш пароля блокировки
	IsLocked     bool         `json:"isLocked"`           // IsLocked включена ли блокировка
	ExportFormat ExportFormat `json:"exportFormat"`       // ExportFormat text или pdf
	Language     string       `json:"language"`           // Language тег локали (например "ko", "en-US")
}

// DefaultSettings returns the settings used when nothing is stored yet.
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:        ThemeSystem,
		IsLocked:     false,
		ExportFormat: ExportFormatText,
		Language:     DefaultLanguage,
	}
}

// HasPassword reports whether a lock password is set.
func (s AppSettings) HasPassword() bool {
	return s.Password != ""
}

// SettingsPatch частичное обновление настроек.
// nil поле означает "оставить прежнее значение".
type SettingsPatch struct {
	Theme        *Theme
	Password     *string // Password новый пароль в открытом виде, "" снимает блокировку
	IsLocked     *bool
	ExportFormat *ExportFormat
	Language     *string
}

// SortMode режим сортировки производного списка
type SortMode string

const (
	SortByDate      SortMode = "date"
	SortByRelevance SortMode = "relevance"
)

// Valid reports whether m is a known sort mode.
func (m SortMode) Valid() bool {
	return m == SortByDate || m == SortByRelevance
}

// ViewMode режим отображения списка записей
type ViewMode string

const (
	ViewList     ViewMode = "list"
	ViewCalendar ViewMode = "calendar"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewList || m == ViewCalendar
}
