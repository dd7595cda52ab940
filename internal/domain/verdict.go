package domain

import "time"

// AvailabilityStatus is the outcome of an availability resolution
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusUnavailable AvailabilityStatus = "unavailable"

	// StatusClosed кампус закрыт по календарному правилу (выходной, праздник,
	// нерабочие часы) - независимо от расписания конкретной аудитории.
	// Не схлопывать с StatusUnavailable: вызывающей стороне нужно различать
	// "предложить другой день" и "предложить другую аудиторию".
	StatusClosed AvailabilityStatus = "closed"

	// StatusNoData вердикт невычислим: у корпуса нет аудиторий
	// или данные всех аудиторий некорректны
	StatusNoData AvailabilityStatus = "no_data"
)

// Verdict is the result of one availability resolution.
// TimeUntilNextTransition - сколько времени аудитория останется свободной до
// начала ближайшего события; nil, если до конца дня ничего не запланировано.
type Verdict struct {
	Status                  AvailabilityStatus
	TimeUntilNextTransition *time.Duration
}

// IsAvailable returns true if the verdict marks the room as usable
func (v Verdict) IsAvailable() bool {
	return v.Status == StatusAvailable
}
