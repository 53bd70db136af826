package create_slot

import "errors"

var (
	// ErrInvalidRange возвращается, когда время начала не раньше времени окончания
	ErrInvalidRange = errors.New("create_slot: start time must be before end time")

	// ErrSlotConflict возвращается, когда слот пересекается с существующим
	ErrSlotConflict = errors.New("create_slot: slot overlaps an existing slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_slot: internal error")
)
