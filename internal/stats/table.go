package stats

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tapit/internal/model"
)

type roundColumn struct {
	header     string
	rightAlign bool
	value      func(model.Round) string
}

var roundColumns = []roundColumn{
	{header: "Round", rightAlign: true, value: func(r model.Round) string { return strconv.Itoa(r.Number) }},
	{header: "Letter", value: func(r model.Round) string { return string(r.Target) }},
	{header: "Typed", value: typedLabel},
	{header: "Time (ms)", rightAlign: true, value: func(r model.Round) string {
		return strconv.FormatInt(r.Elapsed.Milliseconds(), 10)
	}},
	{header: "Budget (s)", rightAlign: true, value: func(r model.Round) string { return model.FormatSeconds(r.Budget) }},
	{header: "Result", value: resultLabel},
}

// roundTable lays out one line per round under a header line. Columns are
// sized to their widest cell in terminal cells.
func roundTable(rounds []model.Round) []string {
	cells := make([][]string, 0, len(rounds)+1)
	header := make([]string, len(roundColumns))
	for i, col := range roundColumns {
		header[i] = col.header
	}
	cells = append(cells, header)
	for _, r := range rounds {
		row := make([]string, len(roundColumns))
		for i, col := range roundColumns {
			row[i] = col.value(r)
		}
		cells = append(cells, row)
	}

	widths := make([]int, len(roundColumns))
	for _, row := range cells {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(cells))
	for _, row := range cells {
		padded := make([]string, len(row))
		for i, cell := range row {
			if roundColumns[i].rightAlign {
				padded[i] = runewidth.FillLeft(cell, widths[i])
			} else {
				padded[i] = runewidth.FillRight(cell, widths[i])
			}
		}
		lines = append(lines, strings.TrimRight(strings.Join(padded, " "), " "))
	}
	return lines
}

func typedLabel(r model.Round) string {
	if r.Typed == 0 {
		return "<none>"
	}
	return string(r.Typed)
}

func resultLabel(r model.Round) string {
	if r.Hit {
		return "hit"
	}
	return r.Outcome.String()
}
