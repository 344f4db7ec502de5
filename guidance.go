package flightsim

/* Gravity turn pitch program and max-Q throttle protection. */

const (
	// pitchOverAltitude is the altitude at which the gravity turn starts.
	pitchOverAltitude = 150.0
	// pitchFloorAltitude is the altitude at which the program reaches 0 deg.
	pitchFloorAltitude = 150e3

	// maxQProtectThreshold engages the throttle guard during first-stage
	// flight; maxQRestoreThreshold disengages it. The band between the two
	// is the hysteresis keeping the throttle from oscillating around a
	// single threshold.
	maxQProtectThreshold = 35e3
	maxQRestoreThreshold = 25e3
	maxQProtectThrottle  = 70.0
	fullThrottle         = 100.0
)

// TargetPitch returns the gravity turn pitch in degrees for the given
// altitude: vertical below the pitch-over altitude, then linearly shallower
// down to horizontal.
func TargetPitch(altitude float64) float64 {
	if altitude <= pitchOverAltitude {
		return 90
	}
	pitch := 90 * (1 - (altitude-pitchOverAltitude)/(pitchFloorAltitude-pitchOverAltitude))
	return clamp(pitch, 0, 90)
}

// maxQGuard is the hysteretic throttle limiter protecting the airframe
// around maximum dynamic pressure.
type maxQGuard struct {
	engaged bool
}

// Apply returns the throttle to fly given the current dynamic pressure and
// the commanded level. While engaged the throttle is forced down; on
// disengagement it is restored to full.
func (g *maxQGuard) Apply(dynamicPressure, commanded float64) float64 {
	if g.engaged {
		if dynamicPressure < maxQRestoreThreshold {
			g.engaged = false
			return fullThrottle
		}
		return maxQProtectThrottle
	}
	if dynamicPressure > maxQProtectThreshold {
		g.engaged = true
		return maxQProtectThrottle
	}
	return commanded
}
