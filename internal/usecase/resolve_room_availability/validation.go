package resolve_room_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// Окно задается целиком или не задается вовсе
	if (req.Start == nil) != (req.End == nil) {
		return fmt.Errorf("%w: start and end must be provided together", ErrInvalidInput)
	}

	// Нарушенный контракт окна отклоняем до любого вычисления
	if req.Start != nil && req.Start.After(*req.End) {
		return ErrInvalidTimeRange
	}

	return nil
}
