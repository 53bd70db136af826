package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotBooked возвращается при попытке удалить забронированный слот
	ErrSlotBooked = errors.New("slot is booked and cannot be deleted")

	// ErrSlotAlreadyBooked возвращается при повторном бронировании слота
	// Повторный вызов MarkBooked - ошибка вызывающей стороны, не идемпотентность
	ErrSlotAlreadyBooked = errors.New("slot is already booked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)
