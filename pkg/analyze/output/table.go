package output

import (
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/23f2005290/analyze/pkg/analyze/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable formats a Result as a human-readable table, one row per category.
func RenderTable(result models.Result) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Count", "Sum", "Mean"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, category := range slices.Sorted(maps.Keys(result.Summary)) {
		entry := result.Summary[category]
		t.AppendRow(table.Row{category, entry.Count, formatNumber(entry.Sum), formatNumber(entry.Mean)})
	}

	t.AppendFooter(table.Row{"Total", result.TotalRowsProcessed, "", ""})
	t.SetCaption("%d rows read, %d dropped", result.RowsRead, result.RowsDropped)

	return t.Render()
}

func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
