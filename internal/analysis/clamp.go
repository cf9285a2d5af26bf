package analysis

import "math"

// Clamp constrains v to [0,100] and rounds to the nearest integer. Every
// numeric score the service emits passes through here.
func Clamp(v float64) int {
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}
