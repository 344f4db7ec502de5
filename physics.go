package flightsim

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

/* Per-tick force accumulation and explicit Euler state update. */

const (
	// nominalChamberPressure is the chamber pressure at rated thrust, in bar.
	nominalChamberPressure = 97.0
)

// stepPowered advances one tick of powered flight on the active stage. The
// throttle is the commanded level after any max-Q protection.
func (e *Engine) stepPowered() {
	stage := e.vehicle.Stage(e.state.StageNumber)
	dt := TickDuration.Seconds()
	atm := AtmosphereAt(e.tm.Altitude)

	rated := stage.VacuumThrust
	if e.state.StageNumber == 1 {
		e.state.ThrottleLevel = e.maxQGuard.Apply(atm.DynamicPressure(e.tm.Velocity), e.state.ThrottleLevel)
		rated = StageThrust(stage, atm.Pressure)
	}

	thrust := rated * e.state.ThrottleLevel / 100
	if e.propellantLeft(e.state.StageNumber) <= 0 {
		thrust = 0
	}

	if thrust > 0 {
		// Mass depletion and burn accounting for the active stage.
		massFlow := thrust / (stage.Isp * G0)
		e.tm.Mass = math.Max(e.tm.Mass-massFlow*dt, e.dryMassFloor())
		e.burnTime[e.state.StageNumber-1] += dt
	}
	e.tm.StageOnePropLeft = e.propellantLeft(1)
	e.tm.StageTwoPropLeft = e.propellantLeft(2)

	e.integrate(thrust, dt, atm)

	e.tm.Thrust = thrust
	e.tm.Throttle = e.state.ThrottleLevel
	e.tm.ChamberPressure = nominalChamberPressure * thrust / stage.VacuumThrust
	e.tm.ExhaustVelocity = stage.Isp * G0
}

// stepCoast advances one tick of unpowered flight: identical force model with
// thrust forced to zero (free fall with drag).
func (e *Engine) stepCoast() {
	dt := TickDuration.Seconds()
	atm := AtmosphereAt(e.tm.Altitude)
	e.integrate(0, dt, atm)
	e.tm.Thrust = 0
	e.tm.ChamberPressure = 0
}

// integrate accumulates thrust, weight and drag, then performs the explicit
// Euler update of velocity, altitude and downrange distance.
func (e *Engine) integrate(thrust, dt float64, atm Atmosphere) {
	weight := e.tm.Mass * GravityAt(e.tm.Altitude)
	drag := dragForce(atm, e.tm.Velocity, e.vehicle)
	netForce := thrust - weight - sign(e.tm.Velocity)*drag
	accel := netForce / e.tm.Mass

	e.tm.Velocity += accel * dt
	e.tm.Altitude += e.tm.Velocity * dt
	if e.tm.Altitude < 0 {
		e.tm.Altitude = 0
		e.tm.Velocity = 0
	}

	// Downrange accumulates the horizontal component implied by the pitch
	// program; the vertical profile keeps the full path velocity.
	sinP, cosP := math.Sincos(e.tm.Pitch * deg2rad)
	vVec := mat64.NewVector(2, []float64{cosP, sinP})
	vVec.ScaleVec(e.tm.Velocity, vVec)
	if horizontal := vVec.At(0, 0); horizontal > 0 {
		e.tm.Downrange += horizontal * dt
	}

	e.tm.Acceleration = accel
	e.tm.GForce = math.Abs(accel) / G0
	if weight > 0 {
		e.tm.TWR = thrust / weight
	} else {
		e.tm.TWR = 0
	}
}

// dragForce returns the magnitude of the aerodynamic drag, zero above the
// modeled atmosphere.
func dragForce(atm Atmosphere, velocity float64, vehicle VehicleSpec) float64 {
	if atm.Density == 0 {
		return 0
	}
	return 0.5 * atm.Density * velocity * velocity * vehicle.DragCoefficient * vehicle.CrossSection
}

// propellantLeft returns the remaining propellant of the given stage as a
// percentage of its rated burn time, floored at zero.
func (e *Engine) propellantLeft(stageNumber int) float64 {
	stage := e.vehicle.Stage(stageNumber)
	left := 100 * (1 - e.burnTime[stageNumber-1]/stage.BurnTime)
	return clamp(left, 0, 100)
}

// dryMassFloor returns the minimum possible vehicle mass in the current stage
// configuration: the active stage can deplete, everything above it cannot.
func (e *Engine) dryMassFloor() float64 {
	second := e.vehicle.Stage(2)
	if e.state.StageNumber == 1 {
		first := e.vehicle.Stage(1)
		return first.DryMass + second.DryMass + second.PropellantMass + e.vehicle.PayloadMass
	}
	return second.DryMass + e.vehicle.PayloadMass
}
