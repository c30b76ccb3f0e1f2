package bookingflow

import "context"

// Booker выполняет внешний вызов бронирования.
// Возвращает true только когда бронирование сохранено.
type Booker interface {
	BookSlot(ctx context.Context, hourIndex, courtIndex int, customerName, contactInfo string, amount int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
