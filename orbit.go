package flightsim

import "math"

// OrbitalEstimate is the simplified orbit derived from the instantaneous
// altitude and velocity. The perigee doubles the current altitude: this is
// only valid near or at apogee and is a documented limitation of the model,
// not an ellipse fit.
type OrbitalEstimate struct {
	Apogee          float64 // m, altitude above the surface
	Perigee         float64 // m, altitude above the surface
	OrbitalVelocity float64 // m/s, circular velocity at the current radius
	Bound           bool    // whether the energy implies a closed orbit
}

// EstimateOrbit computes the orbital estimate from the current state using
// the specific orbital energy for a circular gravity potential.
func EstimateOrbit(altitude, velocity float64) OrbitalEstimate {
	r := EarthRadius + altitude
	ξ := velocity*velocity/2 - EarthGM/r
	est := OrbitalEstimate{OrbitalVelocity: math.Sqrt(EarthGM / r)}
	if ξ >= 0 {
		// Hyperbolic energy, no apogee to report.
		return est
	}
	a := -EarthGM / (2 * ξ)
	if a <= 0 {
		return est
	}
	est.Bound = true
	est.Apogee = math.Max(2*a-r-EarthRadius, 0)
	est.Perigee = altitude
	return est
}
