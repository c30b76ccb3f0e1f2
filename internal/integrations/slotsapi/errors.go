package slotsapi

import "errors"

var (
	// ErrScheduleNotFound возвращается при ответе 404
	ErrScheduleNotFound = errors.New("slotsapi client: schedule not found")

	// ErrSlotTaken возвращается при ответе 409
	ErrSlotTaken = errors.New("slotsapi client: slot is already booked")

	// ErrBadRequest возвращается при ответе 400
	ErrBadRequest = errors.New("slotsapi client: bad request")

	// ErrInternal возвращается, когда запрос не удалось собрать или отправить
	ErrInternal = errors.New("slotsapi client: internal error")

	// ErrInvalidResponse возвращается при прочих статусах или нечитаемом теле ответа
	ErrInvalidResponse = errors.New("slotsapi client: invalid response")
)
