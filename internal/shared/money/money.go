// Package money formats monetary and percentage values for the API.
// All such fields are serialized as decimal strings with exactly two
// fractional digits.
package money

import "strconv"

func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
