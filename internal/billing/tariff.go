package billing

import "github.com/username/consumption-calendar/internal/consumption"

// Tariff holds the price per kWh for each band, in consumption.Bands order
type Tariff struct {
	Rates    [3]int
	Currency string
}

// DefaultTariff returns the standard 200/300/500 COP tariff
func DefaultTariff() Tariff {
	return Tariff{
		Rates:    [3]int{200, 300, 500},
		Currency: "COP",
	}
}

// Cost returns the price of one day of readings
func (t Tariff) Cost(seq consumption.DailyConsumption) int {
	return t.CostOfBands(seq.BandSums())
}

// CostOfBands prices precomputed band sums
func (t Tariff) CostOfBands(sums [3]int) int {
	cost := 0
	for i, kwh := range sums {
		cost += kwh * t.Rates[i]
	}
	return cost
}
