package get_building_availability

import (
	"fmt"
	"time"

	resolveBuilding "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_building_availability"
)

// BuildingAvailabilityResponse HTTP модель агрегированного вердикта по корпусу
type BuildingAvailabilityResponse struct {
	BuildingCode string `json:"buildingCode"`
	BuildingName string `json:"buildingName"`
	Status       string `json:"status"`
	RoomCount    int    `json:"roomCount"`
	WindowStart  string `json:"windowStart"`
	WindowEnd    string `json:"windowEnd"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveBuilding.Response) *BuildingAvailabilityResponse {
	return &BuildingAvailabilityResponse{
		BuildingCode: resp.BuildingCode,
		BuildingName: resp.BuildingName,
		Status:       string(resp.Status),
		RoomCount:    resp.RoomCount,
		WindowStart:  resp.WindowStart.Format(time.RFC3339),
		WindowEnd:    resp.WindowEnd.Format(time.RFC3339),
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса.
// Параметры start и end задаются вместе в формате RFC3339.
func ToUseCaseRequest(buildingCode, startStr, endStr string) (*resolveBuilding.Request, error) {
	req := &resolveBuilding.Request{BuildingCode: buildingCode}

	if startStr == "" && endStr == "" {
		return req, nil
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	req.Start = &start
	req.End = &end
	return req, nil
}
