package resolve_building_availability

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BuildingCode) == "" {
		return fmt.Errorf("%w: buildingCode is required", ErrInvalidInput)
	}

	// Окно задается целиком или не задается вовсе
	if (req.Start == nil) != (req.End == nil) {
		return fmt.Errorf("%w: start and end must be provided together", ErrInvalidInput)
	}

	if req.Start != nil && req.Start.After(*req.End) {
		return ErrInvalidTimeRange
	}

	return nil
}
