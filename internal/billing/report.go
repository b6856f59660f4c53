package billing

import (
	"math"

	"github.com/username/consumption-calendar/internal/calendar"
	"github.com/username/consumption-calendar/internal/consumption"
)

// DayProvider returns the readings for a calendar day.
// *consumption.Store implements it.
type DayProvider interface {
	GetOrGenerate(month string, day int) consumption.DailyConsumption
}

// DayReport is what the user sees after picking a day
type DayReport struct {
	Month    string                       `json:"month"`
	Day      int                          `json:"day"`
	Hourly   consumption.DailyConsumption `json:"hourly_kwh"`
	Bands    [3]int                       `json:"band_kwh"`
	TotalKWh int                          `json:"total_kwh"`
	Cost     int                          `json:"cost"`
	Currency string                       `json:"currency"`
}

// MonthlySummary is the result of the monthly consultation
type MonthlySummary struct {
	Month     string `json:"month"`
	Days      int    `json:"days"`
	MinDay    int    `json:"min_day"`
	MinKWh    int    `json:"min_kwh"`
	MaxDay    int    `json:"max_day"`
	MaxKWh    int    `json:"max_kwh"`
	TotalKWh  int    `json:"total_kwh"`
	TotalCost int    `json:"total_cost"`
	Currency  string `json:"currency"`
}

// NewDayReport builds the report for one day of readings
func NewDayReport(month string, day int, seq consumption.DailyConsumption, tariff Tariff) DayReport {
	bands := seq.BandSums()
	return DayReport{
		Month:    month,
		Day:      day,
		Hourly:   seq,
		Bands:    bands,
		TotalKWh: bands[0] + bands[1] + bands[2],
		Cost:     tariff.CostOfBands(bands),
		Currency: tariff.Currency,
	}
}

// Summarize walks every day of the month and finds the lowest and highest
// consumption days and the total cost. Ties keep the earliest day.
func Summarize(days DayProvider, monthIndex int, tariff Tariff) MonthlySummary {
	month := calendar.MonthName(monthIndex)
	n := calendar.DaysInMonth(monthIndex)

	summary := MonthlySummary{
		Month:    month,
		Days:     n,
		MinDay:   -1,
		MinKWh:   math.MaxInt,
		MaxDay:   -1,
		MaxKWh:   math.MinInt,
		Currency: tariff.Currency,
	}

	for day := 1; day <= n; day++ {
		bands := days.GetOrGenerate(month, day).BandSums()
		total := bands[0] + bands[1] + bands[2]

		if total < summary.MinKWh {
			summary.MinKWh = total
			summary.MinDay = day
		}
		if total > summary.MaxKWh {
			summary.MaxKWh = total
			summary.MaxDay = day
		}

		summary.TotalKWh += total
		summary.TotalCost += tariff.CostOfBands(bands)
	}

	return summary
}
