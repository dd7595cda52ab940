package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Календарь кампуса по умолчанию.
// Все значения переопределяются в конфигурации ([calendar]).
const (
	DefaultTimezone           = "America/New_York"
	DefaultOperatingStartHour = 7.0  // 7:00
	DefaultOperatingEndHour   = 22.0 // 22:00
	DefaultBufferMinutes      = 0
)

// DefaultHolidays праздничные дни университета по умолчанию
var DefaultHolidays = []string{
	"2024-01-01", // New Year's Day
	"2024-07-04", // Independence Day
	"2024-12-25", // Christmas Day
}

// NonOccupyingStatuses статусы событий, не занимающих аудиторию.
// Используются для фильтрации при вычислении доступности.
var NonOccupyingStatuses = []EventStatus{
	StatusTentative,
	StatusCancelled,
}
