package scheduleservice

import (
	"strconv"
	"strings"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

// feedNumber числовое поле фида. Фид отдает и числа, и строки с числами,
// и "N/A" для отсутствующих значений - принимаем все, парсим лениво.
type feedNumber string

// UnmarshalJSON принимает произвольный скаляр фида как есть
func (n *feedNumber) UnmarshalJSON(data []byte) error {
	*n = feedNumber(strings.Trim(string(data), `"`))
	return nil
}

// Float64 парсит значение как число
func (n feedNumber) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// String возвращает сырое значение
func (n feedNumber) String() string {
	return string(n)
}

// availabilityResponse ответ фида availabilitydata.json
type availabilityResponse struct {
	Subjects []subject `json:"subjects"`
}

// subject блок событий одной даты
type subject struct {
	ItemDate string `json:"item_date"`
	Items    []item `json:"items"`
}

// item одно событие фида
type item struct {
	ItemName string     `json:"itemName"`
	Start    feedNumber `json:"start"`
	End      feedNumber `json:"end"`
	TypeID   feedNumber `json:"type_id"`
}

// Коды type_id фида и соответствующие им статусы событий
var typeStatuses = map[string]domain.EventStatus{
	"1": domain.StatusClassMeeting,
	"2": domain.StatusReserved,
	"3": domain.StatusBlackout,
	"4": domain.StatusTentative,
	"5": domain.StatusCancelled,
}

// statusFromTypeID сопоставляет код типа события статусу.
// Незнакомый код трактуем как занятость: лучше показать аудиторию занятой,
// чем отправить людей в занятую.
func statusFromTypeID(typeID feedNumber) domain.EventStatus {
	if status, ok := typeStatuses[typeID.String()]; ok {
		return status
	}
	return domain.StatusReserved
}

// eventKey ключ дедупликации событий фида
type eventKey struct {
	date  string
	start float64
	end   float64
}

// mapEvents конвертирует ответ фида в доменные события.
// Дубликаты по (дата, начало, конец) схлопываются в одно событие со
// склеенными через запятую именами - так же группирует выгрузка фида.
// Элементы с нечитаемым временем ("N/A") пропускаются.
func mapEvents(resp availabilityResponse) []domain.Event {
	order := make([]eventKey, 0)
	grouped := make(map[eventKey]*domain.Event)

	for _, subj := range resp.Subjects {
		for _, it := range subj.Items {
			start, err := it.Start.Float64()
			if err != nil {
				continue
			}
			end, err := it.End.Float64()
			if err != nil {
				continue
			}

			key := eventKey{date: subj.ItemDate, start: start, end: end}
			if existing, ok := grouped[key]; ok {
				if it.ItemName != "" && !strings.Contains(existing.EventName, it.ItemName) {
					existing.EventName += ", " + it.ItemName
				}
				continue
			}

			grouped[key] = &domain.Event{
				Date:      subj.ItemDate,
				TimeStart: start,
				TimeEnd:   end,
				EventName: it.ItemName,
				Status:    statusFromTypeID(it.TypeID),
			}
			order = append(order, key)
		}
	}

	events := make([]domain.Event, 0, len(order))
	for _, key := range order {
		events = append(events, *grouped[key])
	}
	return events
}
