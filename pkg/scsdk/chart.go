package scsdk

import (
	"math"
	"math/rand/v2"
	"time"
)

// ChartDays is the number of points in a temperature chart.
const ChartDays = 7

// ChartPoint is one day of the synthetic temperature series.
type ChartPoint struct {
	Label       string
	Temperature int
}

// TemperatureSeries builds the illustrative 7-day series shown next to a
// machine: oldest day first, each value the current temperature plus a
// uniform variation in [-5, 5), rounded. Nothing here is historical data.
// rnd may be nil to use the global source.
func TemperatureSeries(current int, now time.Time, rnd func() float64) []ChartPoint {
	if rnd == nil {
		rnd = rand.Float64
	}

	points := make([]ChartPoint, 0, ChartDays)
	for i := ChartDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		variation := rnd()*10 - 5
		points = append(points, ChartPoint{
			Label:       day.Format("Jan 2"),
			Temperature: int(math.Round(float64(current) + variation)),
		})
	}
	return points
}
