package billing

import (
	"fmt"

	"github.com/username/consumption-calendar/internal/calendar"
	"go.uber.org/zap"
)

// Manager answers day and month queries over a shared store
type Manager struct {
	days   DayProvider
	tariff Tariff
	logger *zap.Logger
}

// NewManager creates a new billing manager
func NewManager(days DayProvider, tariff Tariff, logger *zap.Logger) *Manager {
	return &Manager{
		days:   days,
		tariff: tariff,
		logger: logger,
	}
}

// Day returns the report for one day of the month
func (m *Manager) Day(monthIndex, day int) (*DayReport, error) {
	if err := calendar.ValidateDay(monthIndex, day); err != nil {
		return nil, fmt.Errorf("failed to build day report: %w", err)
	}

	month := calendar.MonthName(monthIndex)
	report := NewDayReport(month, day, m.days.GetOrGenerate(month, day), m.tariff)

	m.logger.Debug("Day report",
		zap.String("month", month),
		zap.Int("day", day),
		zap.Int("total_kwh", report.TotalKWh))

	return &report, nil
}

// Month runs the monthly consultation
func (m *Manager) Month(monthIndex int) (*MonthlySummary, error) {
	if monthIndex < 0 || monthIndex >= calendar.MonthsInYear {
		return nil, fmt.Errorf("failed to summarize month: %w: index %d", calendar.ErrUnknownMonth, monthIndex)
	}

	summary := Summarize(m.days, monthIndex, m.tariff)

	m.logger.Info("Monthly consultation",
		zap.String("month", summary.Month),
		zap.Int("min_day", summary.MinDay),
		zap.Int("min_kwh", summary.MinKWh),
		zap.Int("max_day", summary.MaxDay),
		zap.Int("max_kwh", summary.MaxKWh),
		zap.Int("total_cost", summary.TotalCost))

	return &summary, nil
}

// MonthDays returns the reports for every day of the month in order
func (m *Manager) MonthDays(monthIndex int) ([]DayReport, error) {
	if monthIndex < 0 || monthIndex >= calendar.MonthsInYear {
		return nil, fmt.Errorf("failed to list days: %w: index %d", calendar.ErrUnknownMonth, monthIndex)
	}

	reports := make([]DayReport, 0, calendar.DaysInMonth(monthIndex))
	for day := 1; day <= calendar.DaysInMonth(monthIndex); day++ {
		report, err := m.Day(monthIndex, day)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}
