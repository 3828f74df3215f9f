package utils

import "math"

// Float64ToInt16 scales x by 32767, rounds, and clips to the int16 range so
// out-of-range input saturates instead of wrapping. NaN maps to 0.
func Float64ToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * 32767.0)
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
