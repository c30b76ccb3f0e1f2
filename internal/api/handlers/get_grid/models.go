package get_grid

import (
	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
	"github.com/m04kA/SMC-CourtSchedule/internal/grid"
	getSlots "github.com/m04kA/SMC-CourtSchedule/internal/usecase/get_slots"
)

// CellResponse is an occupied cell; empty cells are null
type CellResponse struct {
	Name string `json:"name"`
}

// RowResponse is one hour across all courts
type RowResponse struct {
	Time   string          `json:"time"`
	Courts []*CellResponse `json:"courts"`
}

// GridResponse HTTP response model
type GridResponse struct {
	Date   string        `json:"date"`
	Courts int           `json:"courts"`
	Rows   []RowResponse `json:"rows"`
}

func FromGrid(resp *getSlots.Response, g grid.Grid) GridResponse {
	rows := make([]RowResponse, 0, len(g.Rows))
	for _, row := range g.Rows {
		cells := make([]*CellResponse, len(row.Courts))
		for i, cell := range row.Courts {
			if cell != nil {
				cells[i] = &CellResponse{Name: cell.Name}
			}
		}
		rows = append(rows, RowResponse{Time: row.Time, Courts: cells})
	}

	return GridResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Courts: g.Courts(),
		Rows:   rows,
	}
}
