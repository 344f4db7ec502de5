package flightsim

import (
	"math"

	"github.com/gonum/floats"
)

const deg2rad = math.Pi / 180

// clamp bounds v to the [lo, hi] interval.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sign returns the sign of a given number.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// decayToward moves v geometrically toward the floor by the given factor.
func decayToward(v, floor, factor float64) float64 {
	return floor + (v-floor)*factor
}
