package bookingflow

import "errors"

var (
	// ErrCellOccupied возвращается при выборе уже занятой ячейки
	ErrCellOccupied = errors.New("bookingflow: cell is already booked")

	// ErrCellOutOfRange возвращается при выборе позиции вне сетки
	ErrCellOutOfRange = errors.New("bookingflow: cell is out of range")

	// ErrDialogClosed возвращается при работе с формой, когда диалог закрыт
	ErrDialogClosed = errors.New("bookingflow: booking dialog is not open")

	// ErrSubmitInProgress возвращается, пока отправка еще выполняется
	ErrSubmitInProgress = errors.New("bookingflow: submission in progress")

	// ErrCustomerNameRequired возвращается при отправке без имени клиента
	ErrCustomerNameRequired = errors.New("bookingflow: customer name is required")

	// ErrContactInfoRequired возвращается при отправке без контактов
	ErrContactInfoRequired = errors.New("bookingflow: contact info is required")

	// ErrBookingRejected возвращается, когда API не подтвердил бронирование
	ErrBookingRejected = errors.New("bookingflow: booking was not confirmed")
)
