package slotsapi

import "context"

// Booker бронирует ячейки одной даты расписания через API.
// Индекс корта считается с нуля и отправляется как courtNumber = index + 1.
type Booker struct {
	client     *Client
	scheduleID string
	date       string
}

func NewBooker(client *Client, scheduleID, date string) *Booker {
	return &Booker{
		client:     client,
		scheduleID: scheduleID,
		date:       date,
	}
}

// BookSlot возвращает true только если API сохранил бронирование
func (b *Booker) BookSlot(ctx context.Context, hourIndex, courtIndex int, customerName, contactInfo string, amount int64) (bool, error) {
	slot, err := b.client.BookSlot(ctx, BookSlotRequest{
		ScheduleID:   b.scheduleID,
		Date:         b.date,
		CourtNumber:  courtIndex + 1,
		StartTime:    hourIndex,
		CustomerName: customerName,
		ContactInfo:  contactInfo,
		Amount:       amount,
	})
	if err != nil {
		b.client.log.Warn("BookSlot: schedule=%s date=%s hour=%d court=%d: %v",
			b.scheduleID, b.date, hourIndex, courtIndex+1, err)
		return false, err
	}

	b.client.log.Info("BookSlot: booked schedule=%s date=%s hour=%d court=%d",
		b.scheduleID, b.date, slot.StartTime, slot.CourtNumber)
	return true, nil
}
