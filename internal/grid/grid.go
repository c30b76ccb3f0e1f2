// Package grid projects a flat list of booked slots onto a 24-hour by N-court grid.
//
// A Grid is a value: Project and ApplyBooking always return new grids and never
// modify their inputs, so a grid can be shared freely once built.
package grid

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// ErrOutOfRange is returned for an hour or court index outside the grid
var ErrOutOfRange = errors.New("grid: position out of range")

// Cell is an occupied grid cell. Empty cells are nil.
type Cell struct {
	Name string
}

// Row is one hour of the day across all courts
type Row struct {
	Hour   int
	Time   string
	Courts []*Cell // index = courtNumber - 1
}

// Grid is the 24 x N occupancy projection
type Grid struct {
	Rows []Row
}

// New returns an empty grid with courts columns per hour
func New(courts int, label LabelFunc) Grid {
	if courts < 0 {
		courts = 0
	}
	if label == nil {
		label = LegacyLabel
	}

	rows := make([]Row, domain.HoursPerDay)
	for hour := range rows {
		rows[hour] = Row{
			Hour:   hour,
			Time:   label(hour),
			Courts: make([]*Cell, courts),
		}
	}
	return Grid{Rows: rows}
}

// Project builds a grid from slot records using the legacy hour labels
func Project(slots []domain.BookedSlot, courts int) Grid {
	return ProjectWithLabels(slots, courts, LegacyLabel)
}

// ProjectWithLabels builds a grid from slot records.
// Records outside [0,24) hours or [1,courts] courts are dropped without error;
// a later record for the same cell replaces an earlier one.
func ProjectWithLabels(slots []domain.BookedSlot, courts int, label LabelFunc) Grid {
	g := New(courts, label)
	for _, slot := range slots {
		if !slot.InHours() || !slot.OnCourt(courts) {
			continue
		}
		g.Rows[slot.StartTime].Courts[slot.CourtNumber-1] = &Cell{Name: slot.CustomerName}
	}
	return g
}

// Courts returns the number of court columns
func (g Grid) Courts() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0].Courts)
}

// Cell returns the cell at (hour, court), nil when empty
func (g Grid) Cell(hour, court int) (*Cell, error) {
	if err := g.check(hour, court); err != nil {
		return nil, err
	}
	return g.Rows[hour].Courts[court], nil
}

// IsEmpty reports whether (hour, court) is free
func (g Grid) IsEmpty(hour, court int) (bool, error) {
	cell, err := g.Cell(hour, court)
	if err != nil {
		return false, err
	}
	return cell == nil, nil
}

// Occupied returns the number of booked cells
func (g Grid) Occupied() int {
	n := 0
	for _, row := range g.Rows {
		for _, cell := range row.Courts {
			if cell != nil {
				n++
			}
		}
	}
	return n
}

// ApplyBooking returns a copy of g with exactly one cell set to name.
// Only the touched row is copied; untouched rows share their backing arrays,
// which is safe because grids are never modified in place.
func ApplyBooking(g Grid, hour, court int, name string) (Grid, error) {
	if err := g.check(hour, court); err != nil {
		return Grid{}, err
	}

	rows := make([]Row, len(g.Rows))
	copy(rows, g.Rows)

	courts := make([]*Cell, len(g.Rows[hour].Courts))
	copy(courts, g.Rows[hour].Courts)
	courts[court] = &Cell{Name: name}
	rows[hour].Courts = courts

	return Grid{Rows: rows}, nil
}

func (g Grid) check(hour, court int) error {
	if hour < 0 || hour >= len(g.Rows) {
		return fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	}
	if court < 0 || court >= len(g.Rows[hour].Courts) {
		return fmt.Errorf("%w: court index %d", ErrOutOfRange, court)
	}
	return nil
}
