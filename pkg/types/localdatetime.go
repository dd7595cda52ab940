package types

import "time"

// LocalDateTime момент времени, уже приведенный к институтскому часовому
// поясу. Отдельный тип нужен, чтобы зонированное и "сырое" время нельзя было
// перепутать в сравнениях ниже по стеку: вся логика доступности работает
// только с LocalDateTime.
type LocalDateTime struct {
	t time.Time
}

// NewLocalDateTime оборачивает момент времени, уже находящийся в нужной локации
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{t: t}
}

// Date календарная дата локального момента
func (l LocalDateTime) Date() CivilDate {
	return CivilDateOf(l.t)
}

// Weekday локальный день недели
func (l LocalDateTime) Weekday() time.Weekday {
	return l.t.Weekday()
}

// HourOfDay часы с начала локальных суток как вещественное число (13.5 == 13:30)
func (l LocalDateTime) HourOfDay() float64 {
	return float64(l.t.Hour()) + float64(l.t.Minute())/60.0
}

// MinutesOfDay минуты с начала локальных суток
func (l LocalDateTime) MinutesOfDay() int {
	return l.t.Hour()*60 + l.t.Minute()
}

// Time возвращает исходный момент времени
func (l LocalDateTime) Time() time.Time {
	return l.t
}
