package list_buildings

import (
	"github.com/m04kA/CRS-AvailabilityService/internal/service/catalog/models"
)

// BuildingResponse модель корпуса в списке
type BuildingResponse struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RoomCount int     `json:"roomCount"`
}

// BuildingListResponse HTTP модель списка корпусов
type BuildingListResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BuildingListResponse) *BuildingListResponse {
	buildings := make([]BuildingResponse, len(resp.Buildings))
	for i, b := range resp.Buildings {
		buildings[i] = BuildingResponse{
			Code:      b.Code,
			Name:      b.Name,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			RoomCount: b.RoomCount,
		}
	}

	return &BuildingListResponse{Buildings: buildings}
}
