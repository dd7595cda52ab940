package availability

import "errors"

var (
	// ErrInvalidQuery возвращается, когда начало окна запроса позже его конца.
	// Это нарушение контракта вызывающей стороны, а не состояние аудитории.
	ErrInvalidQuery = errors.New("availability: invalid query window")

	// ErrMalformedEvent возвращается при событии с нечитаемой датой
	// или с time_end <= time_start
	ErrMalformedEvent = errors.New("availability: malformed event")
)
