package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotBooked возвращается при попытке удалить забронированный слот
	ErrSlotBooked = errors.New("slot.repository: slot is booked")

	// ErrSlotAlreadyBooked возвращается при повторной попытке бронирования слота
	ErrSlotAlreadyBooked = errors.New("slot.repository: slot is already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
