package availability

import (
	"fmt"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// EventsOnDate возвращает занимающие аудиторию события на указанную локальную
// дату. Список событий не обязан быть отсортирован; входные данные не
// изменяются. Отсутствующее расписание (room.Events == nil) означает
// "событий нет", а не ошибку.
func EventsOnDate(room *domain.Room, date types.CivilDate) ([]domain.Event, error) {
	if room.Events == nil {
		return nil, nil
	}

	var result []domain.Event
	for _, ev := range room.Events {
		// Предварительные и отмененные заявки аудиторию не занимают
		if !ev.Occupies() {
			continue
		}

		// Сравниваем только календарную часть даты: фид отдает даты
		// с суффиксом времени (2024-03-04T00:00:00)
		evDate, err := types.ParseCivilDate(ev.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: event %q: %v", ErrMalformedEvent, ev.EventName, err)
		}

		if evDate == date {
			result = append(result, ev)
		}
	}

	return result, nil
}
