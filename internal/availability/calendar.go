package availability

import (
	"time"

	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// CalendarPolicy календарные правила кампуса: выходные, праздники и часы
// работы. Неизменяема после создания. Праздники сравниваются по локальной
// календарной дате, а не по моменту времени - иначе праздник "уезжает" на
// сутки при конвертации через UTC.
type CalendarPolicy struct {
	holidays  map[types.CivilDate]struct{}
	startHour float64
	endHour   float64
}

// NewCalendarPolicy создает политику с заданным набором праздников
// и часами работы кампуса (десятичные часы, например 7.0-22.0)
func NewCalendarPolicy(holidays []types.CivilDate, startHour, endHour float64) *CalendarPolicy {
	set := make(map[types.CivilDate]struct{}, len(holidays))
	for _, d := range holidays {
		set[d] = struct{}{}
	}
	return &CalendarPolicy{
		holidays:  set,
		startHour: startHour,
		endHour:   endHour,
	}
}

// IsOperatingDay возвращает false для субботы, воскресенья и праздников
func (p *CalendarPolicy) IsOperatingDay(date types.CivilDate) bool {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	return !p.IsHoliday(date)
}

// IsHoliday проверяет, входит ли дата в праздничный набор
func (p *CalendarPolicy) IsHoliday(date types.CivilDate) bool {
	_, ok := p.holidays[date]
	return ok
}

// OperatingWindow возвращает часы работы кампуса в десятичных часах
func (p *CalendarPolicy) OperatingWindow() (startHour, endHour float64) {
	return p.startHour, p.endHour
}
