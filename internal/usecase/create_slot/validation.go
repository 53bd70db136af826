package create_slot

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: mode must be online or offline", ErrInvalidInput)
	}

	// Нарушение start < end - ошибка вызывающей стороны, не конфликт
	if !req.StartTime.Before(req.EndTime) {
		return ErrInvalidRange
	}

	return nil
}
