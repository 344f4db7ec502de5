package flightsim

import (
	"time"

	"github.com/ChristopherRabotin/ode"
)

const (
	predictStep     = 0.5    // s
	predictMaxCoast = 1800.0 // s, hard stop on the ballistic propagation
)

// ApogeePrediction is the outcome of a ballistic coast propagation from the
// current state: the altitude the vehicle would peak at with engines off.
type ApogeePrediction struct {
	Apogee       float64 // m
	TimeToApogee time.Duration
}

// apogeeCoast propagates an unpowered vertical coast with drag. It implements
// ode.Integrable.
type apogeeCoast struct {
	altitude, velocity float64
	mass               float64
	vehicle            VehicleSpec
	elapsed            float64
	peakAltitude       float64
	peakElapsed        float64
}

// GetState returns the state for the integrator.
func (c *apogeeCoast) GetState() []float64 {
	return []float64{c.altitude, c.velocity}
}

// SetState sets the propagated state and tracks the peak.
func (c *apogeeCoast) SetState(t float64, s []float64) {
	c.altitude = s[0]
	c.velocity = s[1]
	c.elapsed += predictStep
	if c.altitude > c.peakAltitude {
		c.peakAltitude = c.altitude
		c.peakElapsed = c.elapsed
	}
}

// Stop returns whether the propagation is over: past apogee, on the ground,
// or past the propagation cap.
func (c *apogeeCoast) Stop(t float64) bool {
	return c.velocity <= 0 || c.altitude <= 0 || c.elapsed > predictMaxCoast
}

// Func is the integration function of the free fall with drag.
func (c *apogeeCoast) Func(t float64, f []float64) (fDot []float64) {
	altitude, velocity := f[0], f[1]
	if altitude < 0 {
		altitude = 0
	}
	atm := AtmosphereAt(altitude)
	drag := dragForce(atm, velocity, c.vehicle)
	fDot = make([]float64, 2)
	fDot[0] = velocity
	fDot[1] = -GravityAt(altitude) - sign(velocity)*drag/c.mass
	return
}

// PredictApogee propagates the current state ballistically (thrust zero, drag
// on) and returns the predicted apogee altitude and the time to reach it. If
// the vehicle is already descending, the prediction is the current state.
func (e *Engine) PredictApogee() ApogeePrediction {
	e.mu.Lock()
	coast := &apogeeCoast{
		altitude:     e.tm.Altitude,
		velocity:     e.tm.Velocity,
		mass:         e.tm.Mass,
		vehicle:      e.vehicle,
		peakAltitude: e.tm.Altitude,
	}
	e.mu.Unlock()
	if coast.velocity <= 0 {
		return ApogeePrediction{Apogee: coast.altitude}
	}
	ode.NewRK4(0, predictStep, coast).Solve()
	return ApogeePrediction{
		Apogee:       coast.peakAltitude,
		TimeToApogee: time.Duration(coast.peakElapsed * float64(time.Second)),
	}
}
