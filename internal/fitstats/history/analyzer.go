package history

import (
	"fmt"

	"github.com/avolkov/fittrack/pkg"
)

// ChartRange selects how far back a chart series reaches.
type ChartRange string

const (
	RangeWeek  ChartRange = "week"
	RangeMonth ChartRange = "month"
)

func ParseChartRange(input string) (ChartRange, error) {
	switch ChartRange(input) {
	case RangeWeek:
		return RangeWeek, nil
	case RangeMonth:
		return RangeMonth, nil
	default:
		return "", fmt.Errorf("invalid chart range: %q", input)
	}
}

func (r ChartRange) Days() int {
	if r == RangeMonth {
		return 30
	}
	return 7
}

type ChartPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type HeatmapCell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// ChartSeries builds a continuous per-day series for one exercise,
// ending on endDate, oldest day first. Days without a record count as zero.
func ChartSeries(records []Record, exercise string, chartRange ChartRange, endDate string) ([]ChartPoint, error) {
	end, err := pkg.ParseDateString(endDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}

	countByDate := make(map[string]int, len(records))
	for _, record := range records {
		countByDate[record.Date] = record.ExerciseCount(exercise)
	}

	days := chartRange.Days()
	series := make([]ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := pkg.DateString(end.AddDate(0, 0, -i))
		series = append(series, ChartPoint{
			Date:  date,
			Count: countByDate[date],
		})
	}
	return series, nil
}

// Heatmap folds daily records into intensity cells, most recent day first.
func Heatmap(records []Record) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(records))
	for _, record := range records {
		total := record.TotalCount()
		cells = append(cells, HeatmapCell{
			Date:  record.Date,
			Count: total,
			Level: heatLevel(total),
		})
	}
	return cells
}

func heatLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count < 20:
		return 1
	case count < 50:
		return 2
	case count < 100:
		return 3
	default:
		return 4
	}
}
