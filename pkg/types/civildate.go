package types

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat формат календарной даты в датасете и API
const DateFormat = "2006-01-02"

// CivilDate календарная дата без времени и часового пояса.
// Используется для всех сравнений "тот же день", чтобы исключить
// рассинхронизацию на границах часовых поясов.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCivilDate создает дату из компонентов
func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{Year: year, Month: month, Day: day}
}

// CivilDateOf возвращает календарную дату момента t в его локации
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// ParseCivilDate парсит дату формата YYYY-MM-DD.
// Допускает суффикс времени после 'T' (фид отдает даты вида 2024-03-04T00:00:00).
func ParseCivilDate(s string) (CivilDate, error) {
	datePart := s
	if idx := strings.IndexByte(s, 'T'); idx >= 0 {
		datePart = s[:idx]
	}

	t, err := time.Parse(DateFormat, datePart)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid civil date %q: %v", s, err)
	}
	return CivilDateOf(t), nil
}

// String возвращает дату в формате YYYY-MM-DD
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday возвращает день недели
func (d CivilDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsZero сообщает, что дата не задана
func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}
