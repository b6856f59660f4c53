package consumption

import "fmt"

// HoursPerDay is the number of hourly readings in a day
const HoursPerDay = 24

// DailyConsumption holds one kWh reading per hour, index 0 = 00:00
type DailyConsumption [HoursPerDay]int

// Band is a fixed range of hours with its own consumption range and price
type Band struct {
	Name      string
	StartHour int // inclusive
	EndHour   int // inclusive
	MinKWh    int // inclusive
	MaxKWh    int // inclusive
}

// Bands are disjoint and cover hours 0-23 in order
var Bands = [3]Band{
	{Name: "00-06", StartHour: 0, EndHour: 6, MinKWh: 100, MaxKWh: 300},
	{Name: "07-17", StartHour: 7, EndHour: 17, MinKWh: 300, MaxKWh: 600},
	{Name: "18-23", StartHour: 18, EndHour: 23, MinKWh: 601, MaxKWh: 999},
}

// BandForHour returns the band containing hour
func BandForHour(hour int) Band {
	for _, b := range Bands {
		if hour >= b.StartHour && hour <= b.EndHour {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// Key identifies a day of the calendar
type Key struct {
	Month string
	Day   int
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%d", k.Month, k.Day)
}

// BandSum sums readings for hours in [startHour, endHour].
// Hours are clamped to 0-23; an empty range sums to 0.
func BandSum(seq DailyConsumption, startHour, endHour int) int {
	if startHour < 0 {
		startHour = 0
	}
	if endHour > HoursPerDay-1 {
		endHour = HoursPerDay - 1
	}

	sum := 0
	for h := startHour; h <= endHour; h++ {
		sum += seq[h]
	}
	return sum
}

// Total returns the sum of all 24 readings
func (d DailyConsumption) Total() int {
	return BandSum(d, 0, HoursPerDay-1)
}

// BandSums returns the sum of each band, in Bands order
func (d DailyConsumption) BandSums() [3]int {
	var sums [3]int
	for i, b := range Bands {
		sums[i] = BandSum(d, b.StartHour, b.EndHour)
	}
	return sums
}
