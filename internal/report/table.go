// Package report renders a generated document for humans: console tables,
// xlsx workbooks, and seasonality charts.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

// WriteStatsTable renders one asset's per-month statistics as a console
// table. Months without data points render as dashes.
func WriteStatsTable(out io.Writer, key string, asset *model.AssetReport, monthNames []string) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%s (%s) since %d", asset.Name, key, asset.StartYear))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Month", "Avg %", "Median %", "Vol %", "Max %", "Min %", "Green", "Red", "Win %"})

	for month := 1; month <= model.MonthsPerYear; month++ {
		name := monthName(monthNames, month)
		stats := asset.Statistics[month]
		if stats == nil {
			t.AppendRow(table.Row{name, "-", "-", "-", "-", "-", "-", "-", "-"})
			continue
		}
		t.AppendRow(table.Row{
			name,
			fmt.Sprintf("%.2f", stats.Average),
			fmt.Sprintf("%.2f", stats.Median),
			fmt.Sprintf("%.2f", stats.Volatility),
			fmt.Sprintf("%.1f", stats.Max),
			fmt.Sprintf("%.1f", stats.Min),
			stats.GreenMonths,
			stats.RedMonths,
			fmt.Sprintf("%.1f", stats.WinRate),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
	})

	t.Render()
}

func monthName(monthNames []string, month int) string {
	if month >= 1 && month <= len(monthNames) {
		return monthNames[month-1]
	}
	return time.Month(month).String()[:3]
}
