// Package bookingflow управляет диалогом бронирования в сетке кортов: выбор свободной
// ячейки, заполнение формы клиента и отправка в API бронирования.
package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CourtSchedule/internal/grid"
)

// Flow конечный автомат бронирования для одной сетки.
// Не безопасен для конкурентного использования.
type Flow struct {
	grid     grid.Grid
	state    State
	selected *Position
	form     Form
	amount   int64
	booker   Booker
	logger   Logger
	lastErr  error
}

// New создает flow в состоянии Idle поверх g
func New(g grid.Grid, booker Booker, amount int64, logger Logger) *Flow {
	return &Flow{
		grid:   g,
		state:  StateIdle,
		amount: amount,
		booker: booker,
		logger: logger,
	}
}

// Grid возвращает текущую сетку (возможно, обновленную локально)
func (f *Flow) Grid() grid.Grid {
	return f.grid
}

// State возвращает текущее состояние
func (f *Flow) State() State {
	return f.state
}

// Selected возвращает ячейку, для которой открыт диалог
func (f *Flow) Selected() (Position, bool) {
	if f.selected == nil {
		return Position{}, false
	}
	return *f.selected, true
}

// Form возвращает текущие значения формы
func (f *Flow) Form() Form {
	return f.form
}

// LastError возвращает ошибку последней отправки, nil после успеха
func (f *Flow) LastError() error {
	return f.lastErr
}

// Reset заменяет сетку (например, после повторной загрузки) и возвращает в Idle.
// Значения формы сохраняются.
func (f *Flow) Reset(g grid.Grid) error {
	if f.state == StateSubmitting {
		return ErrSubmitInProgress
	}
	f.grid = g
	f.state = StateIdle
	f.selected = nil
	return nil
}

// SelectCell открывает диалог для свободной ячейки.
// Выбор занятой ячейки ничего не меняет.
func (f *Flow) SelectCell(hour, court int) error {
	if f.state == StateSubmitting {
		return ErrSubmitInProgress
	}

	empty, err := f.grid.IsEmpty(hour, court)
	if err != nil {
		if errors.Is(err, grid.ErrOutOfRange) {
			return fmt.Errorf("%w: hour=%d court=%d", ErrCellOutOfRange, hour, court)
		}
		return err
	}
	if !empty {
		return ErrCellOccupied
	}

	f.selected = &Position{Hour: hour, Court: court}
	f.state = StateDialogOpen
	return nil
}

// SetCustomerName обновляет имя клиента
func (f *Flow) SetCustomerName(name string) error {
	if f.state != StateDialogOpen {
		return ErrDialogClosed
	}
	f.form.CustomerName = name
	return nil
}

// SetContactInfo обновляет контакты
func (f *Flow) SetContactInfo(contact string) error {
	if f.state != StateDialogOpen {
		return ErrDialogClosed
	}
	f.form.ContactInfo = contact
	return nil
}

// Cancel закрывает диалог без бронирования. Значения формы сохраняются.
func (f *Flow) Cancel() error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmitInProgress
	case StateIdle:
		return ErrDialogClosed
	}
	f.state = StateIdle
	f.selected = nil
	return nil
}

// Submit отправляет форму в Booker.
// При успехе сетка обновляется локально, форма очищается и диалог закрывается.
// При ошибке диалог остается открытым с введенными значениями.
func (f *Flow) Submit(ctx context.Context) error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmitInProgress
	case StateIdle:
		return ErrDialogClosed
	}

	name := strings.TrimSpace(f.form.CustomerName)
	if name == "" {
		return ErrCustomerNameRequired
	}
	contact := strings.TrimSpace(f.form.ContactInfo)
	if contact == "" {
		return ErrContactInfoRequired
	}

	pos := *f.selected
	f.state = StateSubmitting

	ok, err := f.booker.BookSlot(ctx, pos.Hour, pos.Court, name, contact, f.amount)
	if err == nil && !ok {
		err = ErrBookingRejected
	}
	if err != nil {
		f.logger.Warn("Submit: booking failed for hour=%d court=%d: %v", pos.Hour, pos.Court, err)
		f.state = StateDialogOpen
		f.lastErr = err
		return err
	}

	updated, err := grid.ApplyBooking(f.grid, pos.Hour, pos.Court, name)
	if err != nil {
		// позиция проверена при выборе, сетка с тех пор не уменьшалась
		f.state = StateDialogOpen
		f.lastErr = err
		return err
	}

	f.logger.Info("Submit: booked hour=%d court=%d for %s", pos.Hour, pos.Court, name)

	f.grid = updated
	f.form = Form{}
	f.selected = nil
	f.lastErr = nil
	f.state = StateIdle
	return nil
}
