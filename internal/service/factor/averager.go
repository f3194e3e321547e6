// Package factor averages the hourly bolus factors over a meal's absorption window.
package factor

import (
	"fmt"

	"github.com/KasumiMercury/primind-bolus-calculator/internal/domain"
)

const (
	minutesPerHour = 60

	// DefaultWindowMinutes is the averaging window used for a meal bolus.
	DefaultWindowMinutes = 120
)

type Averager struct{}

func NewAverager() *Averager {
	return &Averager{}
}

// Average walks the window minute by minute starting at startHour:startMinute
// and returns the mean of the factor in effect at each minute. Partial hours
// are weighted by their exact minute count and the window wraps past midnight,
// including windows longer than a day. Hours missing from table use the
// fallback factor; a nil or empty table is valid.
func (a *Averager) Average(startHour, startMinute, durationMinutes int, table domain.HourlyFactorTable) (float64, error) {
	if startHour < 0 || startHour >= domain.HoursPerDay {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidHour, startHour)
	}
	if startMinute < 0 || startMinute >= minutesPerHour {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidMinute, startMinute)
	}
	if durationMinutes <= 0 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidDuration, durationMinutes)
	}

	var total float64
	for i := 0; i < durationMinutes; i++ {
		hour := (startHour + (startMinute+i)/minutesPerHour) % domain.HoursPerDay
		total += Resolve(table, hour)
	}

	return total / float64(durationMinutes), nil
}
