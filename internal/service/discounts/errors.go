package discounts

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило скидки не найдено
	ErrRuleNotFound = errors.New("discount rule not found")

	// ErrInvalidRange возвращается, когда нижняя граница диапазона больше верхней
	ErrInvalidRange = errors.New("bookingCountFrom must not exceed bookingCountTo")

	// ErrInvalidPercent возвращается при проценте скидки вне (0, 100]
	ErrInvalidPercent = errors.New("discountPercent must be in (0, 100]")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("discounts service: internal error")
)
