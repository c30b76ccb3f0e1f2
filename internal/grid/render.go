package grid

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"
)

const emptyCell = "."

// Render writes g as an aligned text table: one line per hour, one column per court.
func Render(w io.Writer, g Grid) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Time"}
	for i := 0; i < g.Courts(); i++ {
		header = append(header, fmt.Sprintf("Court %d", i+1))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}

	for _, row := range g.Rows {
		line := []string{row.Time}
		for _, cell := range row.Courts {
			if cell == nil {
				line = append(line, emptyCell)
				continue
			}
			line = append(line, printable(cell.Name))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(line, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// printable replaces control characters, which would split cells or lines, with spaces.
// Invalid UTF-8 bytes come out as U+FFFD.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
