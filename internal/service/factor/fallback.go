package factor

import "github.com/KasumiMercury/primind-bolus-calculator/internal/domain"

// fallbackFactors is the compiled-in default bolus factor per hour of day.
var fallbackFactors = [domain.HoursPerDay]float64{
	0.83, 0.77, 0.72, 0.72, 0.77, 0.88, // 00-05
	0.99, 1.14, 1.10, 1.27, 1.48, 1.25, // 06-11
	1.02, 0.81, 0.81, 0.81, 0.81, 0.81, // 12-17
	0.81, 1.01, 1.01, 1.01, 1.01, 1.01, // 18-23
}

// Fallback returns the default factor for hour. Hours outside 0-23 wrap.
func Fallback(hour int) float64 {
	h := hour % domain.HoursPerDay
	if h < 0 {
		h += domain.HoursPerDay
	}
	return fallbackFactors[h]
}

// FallbackTable returns a fresh, complete table holding the default factors.
func FallbackTable() domain.HourlyFactorTable {
	table := make(domain.HourlyFactorTable, domain.HoursPerDay)
	for h, f := range fallbackFactors {
		table[h] = f
	}
	return table
}

// Resolve returns the factor for hour from table, or the fallback when absent.
func Resolve(table domain.HourlyFactorTable, hour int) float64 {
	if f, ok := table.Lookup(hour); ok {
		return f
	}
	return Fallback(hour)
}

// Merge overlays the stored table on the fallback table and returns all
// 24 rows sorted by hour.
func Merge(table domain.HourlyFactorTable) []domain.HourlyFactor {
	rows := make([]domain.HourlyFactor, 0, domain.HoursPerDay)
	for h := 0; h < domain.HoursPerDay; h++ {
		rows = append(rows, domain.HourlyFactor{Hour: h, BolusFactor: Resolve(table, h)})
	}
	return rows
}
