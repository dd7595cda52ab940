package refresh_dataset

import (
	refreshDataset "github.com/m04kA/CRS-AvailabilityService/internal/usecase/refresh_dataset"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// RefreshResponse HTTP модель итогов обновления датасета
type RefreshResponse struct {
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Updated int    `json:"updated"`
	Failed  int    `json:"failed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *refreshDataset.Response) *RefreshResponse {
	return &RefreshResponse{
		Date:    resp.Date.String(),
		Total:   resp.Total,
		Updated: resp.Updated,
		Failed:  resp.Failed,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустая дата означает "сегодня" в часовом поясе кампуса.
func ToUseCaseRequest(dateStr string) (*refreshDataset.Request, error) {
	if dateStr == "" {
		return &refreshDataset.Request{}, nil
	}

	date, err := types.ParseCivilDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &refreshDataset.Request{Date: date}, nil
}
