package billing

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/username/consumption-calendar/internal/consumption"
)

// DayTitle is the dialog title for a day report
const DayTitle = "Consumption by band and hour"

// MonthTitle is the dialog title for the monthly consultation
const MonthTitle = "Monthly consultation"

// FormatDay renders a day report as dialog text
func FormatDay(r DayReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Day %d of %s\n", r.Day, r.Month)
	for i, band := range consumption.Bands {
		fmt.Fprintf(&b, "Band %d (%s): %s kWh\n", i+1, band.Name, humanize.Comma(int64(r.Bands[i])))
	}
	fmt.Fprintf(&b, "Total consumption: %s kWh\n", humanize.Comma(int64(r.TotalKWh)))
	fmt.Fprintf(&b, "Cost: %s %s\n", humanize.Comma(int64(r.Cost)), r.Currency)

	b.WriteString("\nConsumption by hour:\n")
	for h, kwh := range r.Hourly {
		fmt.Fprintf(&b, "Hour %02d: %d kWh [%s]\n", h, kwh, consumption.BandForHour(h).Name)
	}

	return b.String()
}

// FormatMonth renders the monthly consultation as dialog text
func FormatMonth(s MonthlySummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Consultation for %s:\n", s.Month)
	fmt.Fprintf(&b, "Lowest consumption day: %d (%s kWh)\n", s.MinDay, humanize.Comma(int64(s.MinKWh)))
	fmt.Fprintf(&b, "Highest consumption day: %d (%s kWh)\n", s.MaxDay, humanize.Comma(int64(s.MaxKWh)))
	fmt.Fprintf(&b, "Total consumption: %s kWh over %d days\n", humanize.Comma(int64(s.TotalKWh)), s.Days)
	fmt.Fprintf(&b, "Total to pay for the month: %s %s\n", humanize.Comma(int64(s.TotalCost)), s.Currency)

	return b.String()
}
