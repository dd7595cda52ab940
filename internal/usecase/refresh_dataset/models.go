package refresh_dataset

import "github.com/m04kA/CRS-AvailabilityService/pkg/types"

// Request модель запроса на обновление датасета.
// Date - день, за который загружается расписание; нулевая дата
// означает "сегодня" в часовом поясе кампуса.
type Request struct {
	Date types.CivilDate
}

// Response модель ответа с итогами обновления
type Response struct {
	Date    types.CivilDate
	Total   int
	Updated int
	Failed  int
}
