package availability

import (
	"errors"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// BuildingAggregator сводит вердикты аудиторий корпуса к одному вердикту
// корпуса. OR-свертка: порядок обхода аудиторий на результат не влияет.
type BuildingAggregator struct {
	resolver *RoomResolver
	logger   Logger
}

// NewBuildingAggregator создает агрегатор поверх резолвера аудиторий
func NewBuildingAggregator(resolver *RoomResolver, logger Logger) *BuildingAggregator {
	return &BuildingAggregator{
		resolver: resolver,
		logger:   logger,
	}
}

// Resolve возвращает Available, если свободна хотя бы одна аудитория корпуса.
// Аудитории с некорректными данными исключаются из свертки: это нефатальный
// пробел в данных, а не повод завалить весь корпус.
func (a *BuildingAggregator) Resolve(building *domain.Building, query domain.Query) (domain.Verdict, error) {
	if !building.HasRooms() {
		return domain.Verdict{Status: domain.StatusNoData}, nil
	}

	resolved := 0
	closed := 0

	for i := range building.Rooms {
		room := &building.Rooms[i]

		verdict, err := a.resolver.Resolve(room, query)
		if err != nil {
			// Некорректное окно одинаково для всех аудиторий - дальше нет смысла
			if errors.Is(err, ErrInvalidQuery) {
				return domain.Verdict{}, err
			}
			a.logger.Warn("BuildingAggregator: skipping room id=%d name=%q: %v", room.ID, room.Name, err)
			continue
		}

		resolved++
		switch verdict.Status {
		case domain.StatusAvailable:
			// Вердикт корпуса не несет длительности: она имеет смысл
			// только для конкретной аудитории
			return domain.Verdict{Status: domain.StatusAvailable}, nil
		case domain.StatusClosed:
			closed++
		}
	}

	// Ни одну аудиторию не удалось вычислить
	if resolved == 0 {
		return domain.Verdict{Status: domain.StatusNoData}, nil
	}

	// Все вычисленные аудитории под календарным закрытием
	if closed == resolved {
		return domain.Verdict{Status: domain.StatusClosed}, nil
	}

	return domain.Verdict{Status: domain.StatusUnavailable}, nil
}
