package models

import (
	"sort"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// BuildingSummary модель корпуса для каталога
type BuildingSummary struct {
	Code      string
	Name      string
	Latitude  float64
	Longitude float64
	RoomCount int
}

// BuildingListResponse модель списка корпусов
type BuildingListResponse struct {
	Buildings []BuildingSummary
}

// RoomResponse модель аудитории
type RoomResponse struct {
	ID            int64
	Name          string
	RoomNumber    string
	BuildingCode  string
	Capacity      *int
	HasWhiteboard bool
	HasProjector  bool
}

// ScheduleEntry одно событие дневного расписания аудитории
type ScheduleEntry struct {
	EventName string
	TimeStart float64
	TimeEnd   float64
	Status    domain.EventStatus
}

// RoomScheduleResponse дневное расписание аудитории
type RoomScheduleResponse struct {
	RoomID   int64
	RoomName string
	Date     types.CivilDate
	Entries  []ScheduleEntry
}

// FromDomainBuildings конвертирует корпуса в модель каталога
func FromDomainBuildings(buildings []*domain.Building) *BuildingListResponse {
	result := make([]BuildingSummary, 0, len(buildings))
	for _, b := range buildings {
		result = append(result, BuildingSummary{
			Code:      b.Code,
			Name:      b.Name,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			RoomCount: len(b.Rooms),
		})
	}
	return &BuildingListResponse{Buildings: result}
}

// FromDomainRoom конвертирует аудиторию в модель ответа
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:            room.ID,
		Name:          room.Name,
		RoomNumber:    room.RoomNumber,
		BuildingCode:  room.BuildingCode,
		Capacity:      room.Capacity,
		HasWhiteboard: room.HasWhiteboard,
		HasProjector:  room.HasProjector,
	}
}

// ScheduleFromEvents строит дневное расписание из событий дня:
// сортирует по времени начала и убирает дубликаты
func ScheduleFromEvents(room *domain.Room, date types.CivilDate, events []domain.Event) *RoomScheduleResponse {
	entries := make([]ScheduleEntry, 0, len(events))
	seen := make(map[ScheduleEntry]struct{}, len(events))

	for _, ev := range events {
		entry := ScheduleEntry{
			EventName: ev.EventName,
			TimeStart: ev.TimeStart,
			TimeEnd:   ev.TimeEnd,
			Status:    ev.Status,
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TimeStart < entries[j].TimeStart
	})

	return &RoomScheduleResponse{
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     date,
		Entries:  entries,
	}
}
