package domain

import "math"

// EventStatus represents the occupancy status of a scheduled event
type EventStatus string

const (
	// StatusClassMeeting учебное занятие, занимает аудиторию
	StatusClassMeeting EventStatus = "class_meeting"
	// StatusReserved подтвержденное бронирование, занимает аудиторию
	StatusReserved EventStatus = "reserved"
	// StatusBlackout служебная блокировка аудитории, занимает аудиторию
	StatusBlackout EventStatus = "blackout"
	// StatusTentative предварительная заявка, аудиторию НЕ занимает
	StatusTentative EventStatus = "tentative"
	// StatusCancelled отмененное событие, аудиторию НЕ занимает
	StatusCancelled EventStatus = "cancelled"
)

// Event represents one scheduled event in a room's availability feed.
// Times are decimal hours since local midnight (13.5 == 13:30).
type Event struct {
	Date      string // календарная дата YYYY-MM-DD, фид может добавлять суффикс T00:00:00
	TimeStart float64
	TimeEnd   float64
	EventName string
	Status    EventStatus
}

// Occupies returns true if the event actually occupies the room
func (e Event) Occupies() bool {
	return e.Status != StatusTentative && e.Status != StatusCancelled
}

// StartMinutes returns the start time in minutes since local midnight
func (e Event) StartMinutes() int {
	return decimalHoursToMinutes(e.TimeStart)
}

// EndMinutes returns the end time in minutes since local midnight
func (e Event) EndMinutes() int {
	return decimalHoursToMinutes(e.TimeEnd)
}

// decimalHoursToMinutes переводит десятичные часы в минуты с начала суток.
// Дробная часть округляется до ближайшей минуты (13.33 -> 13:20).
func decimalHoursToMinutes(h float64) int {
	hours := math.Floor(h)
	minutes := math.Round((h - hours) * 60)
	return int(hours)*60 + int(minutes)
}
