package get_slots

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("get_slots: schedule not found")

	// ErrInvalidInput возвращается при пустом id расписания или некорректной дате
	ErrInvalidInput = errors.New("get_slots: invalid input data")

	// ErrInternal возвращается при ошибках хранилища, в том числе при некорректном id
	ErrInternal = errors.New("get_slots: internal error")
)
