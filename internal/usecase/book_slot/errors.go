package book_slot

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("book_slot: schedule not found")

	// ErrSlotTaken возвращается, когда корт уже забронирован на этот час
	ErrSlotTaken = errors.New("book_slot: slot is already booked")

	// ErrInvalidInput возвращается при ошибках валидации
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("book_slot: internal error")
)
