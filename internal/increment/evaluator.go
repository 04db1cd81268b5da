package increment

import (
	incrementerrors "github.com/gaurisankartarasia/emp-2/internal/increment/errors"
)

// Scheme is an immutable rating to percentage lookup built once per report
// call and passed down the call chain, never cached across requests.
type Scheme struct {
	entries    map[int]float64
	defaultPct float64
}

func SchemeFromRows(rows []IncrementScheme) (Scheme, error) {
	if len(rows) == 0 {
		return Scheme{}, incrementerrors.ErrSchemeNotConfigured
	}

	entries := make(map[int]float64, len(rows))
	for _, row := range rows {
		entries[row.Rating] = row.Percentage
	}

	// tier 0 doubles as the fallback percentage
	return Scheme{
		entries:    entries,
		defaultPct: entries[0],
	}, nil
}

// PercentageFor returns the exact entry for the rounded rating, or the
// default tier when no exact entry exists.
func (s Scheme) PercentageFor(roundedRating int) float64 {
	if pct, ok := s.entries[roundedRating]; ok {
		return pct
	}
	return s.defaultPct
}
