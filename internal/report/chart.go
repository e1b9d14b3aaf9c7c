package report

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

// RenderSeasonality draws a bar chart of one asset's average return per
// calendar month and returns the encoded PNG. Months without data render
// as zero bars.
func RenderSeasonality(key string, asset *model.AssetReport, monthNames []string) ([]byte, error) {
	values := make([]float64, model.MonthsPerYear)
	labels := make([]string, model.MonthsPerYear)
	for month := 1; month <= model.MonthsPerYear; month++ {
		labels[month-1] = monthName(monthNames, month)
		if stats := asset.Statistics[month]; stats != nil {
			values[month-1] = stats.Average
		}
	}

	painter, err := charts.BarRender([][]float64{values},
		charts.TitleTextOptionFunc(fmt.Sprintf("%s average monthly return (%%)", key)),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.TrueFlag()}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(400),
	)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	img, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return img, nil
}
