package flightsim

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

/* Landing sequencer: a seven band altitude keyed propulsive return. */

const (
	// Band edges, top to bottom.
	reentryBandFloor  = 50e3 // m
	aeroBandFloor     = 7e3  // m
	entryBandFloor    = 2e3  // m
	touchdownBandCeil = 20.0 // m

	// Re-entry burn, three engines.
	reentryBurnVelocityFloor = -1200.0 // m/s
	reentryBurnVelocityStep  = 15.0    // m/s shed per tick
	reentryBurnThrust        = 1.8e6   // N
	reentryBurnThrottle      = 30.0

	// Aerodynamic descent under grid fin control.
	aeroDescentVelocityFloor = -350.0
	aeroDescentDecay         = 0.985

	// Entry burn, three engines.
	entryBurnVelocityFloor = -250.0
	entryBurnDecay         = 0.97
	entryBurnThrust        = 2.2e6
	entryBurnThrottle      = 70.0

	// Coast before the landing burn.
	landingCoastVelocityFloor = -120.0
	landingCoastDecay         = 0.97
	landingBurnStartAltitude  = 600.0 // m

	// Hoverslam burn, single engine.
	maxSingleEngineThrust = 914e3 // N
	hoverslamMinThrottle  = 0.40  // fraction of max single engine thrust
	legsDeployAltitude    = 40.0  // m

	// Terminal touchdown.
	touchdownApproachGain   = 0.8
	touchdownMinVelocity    = -5.0  // m/s
	touchdownCorrectionGain = 150e3 // N per m/s of velocity error
	touchdownMinThrust      = 400e3 // N
	touchdownMaxThrust      = 850e3 // N

	landingIsp        = 282.0 // s, booster engines at low altitude
	oxidizerFraction  = 0.72  // share of the total flow
	maxTurbopumpSpeed = 36000 // rpm
)

// landingBand identifies the active band of the sequencer; selection is a
// pure function of altitude and the landing flags.
type landingBand uint8

const (
	bandReentryBurn landingBand = iota + 1
	bandAeroDescent
	bandEntryBurn
	bandLandingCoast
	bandLandingBurn
	bandTouchdown
	bandLanded
)

// selectLandingBand returns the band for the given altitude and burn flag.
func selectLandingBand(altitude float64, burnStarted bool) landingBand {
	switch {
	case altitude <= 0:
		return bandLanded
	case altitude <= touchdownBandCeil:
		return bandTouchdown
	case burnStarted:
		return bandLandingBurn
	case altitude <= entryBandFloor:
		return bandLandingCoast
	case altitude <= aeroBandFloor:
		return bandEntryBurn
	case altitude <= reentryBandFloor:
		return bandAeroDescent
	default:
		return bandReentryBurn
	}
}

// stepLanding advances one tick of the propulsive return. Mission time is
// frozen by the caller; the sequencer keeps its own clock for the grid fin
// oscillation terms.
func (e *Engine) stepLanding() {
	dt := TickDuration.Seconds()
	e.landingElapsed += dt

	switch selectLandingBand(e.tm.Altitude, e.state.LandingBurnStarted) {
	case bandLanded:
		e.touchdown()
		return
	case bandTouchdown:
		target := math.Max(-math.Sqrt(touchdownApproachGain*e.tm.Altitude), touchdownMinVelocity)
		hover := e.tm.Mass * GravityAt(e.tm.Altitude)
		demanded := hover + touchdownCorrectionGain*(target-e.tm.Velocity)
		if e.tm.Velocity >= 0 || demanded < touchdownMinThrust {
			// The throttle floor can out-thrust a light vehicle's weight;
			// holding the burn would loft it. Fall until the controller
			// demands at least the floor.
			e.landingBurnIntegrate(0, dt)
			e.tm.Throttle = 0
		} else {
			thrust := math.Min(demanded, touchdownMaxThrust)
			e.landingBurnIntegrate(thrust, dt)
			e.tm.Throttle = 100 * thrust / touchdownMaxThrust
		}
		e.state.EngineStatus = EngineTouchdown
	case bandLandingBurn:
		// Hoverslam: size the burn from the time to impact.
		speed := math.Max(math.Abs(e.tm.Velocity), 1e-6)
		timeToImpact := e.tm.Altitude / speed
		requiredDecel := speed / timeToImpact
		demanded := e.tm.Mass * (requiredDecel + G0)
		if e.tm.Velocity >= 0 || demanded < hoverslamMinThrottle*maxSingleEngineThrust {
			// Same guard as the touchdown band: below the throttle floor
			// the burn waits, it never lofts.
			e.landingBurnIntegrate(0, dt)
			e.tm.Throttle = 0
		} else {
			thrust := math.Min(demanded, maxSingleEngineThrust)
			e.landingBurnIntegrate(thrust, dt)
			e.tm.Throttle = 100 * thrust / maxSingleEngineThrust
		}
		if e.tm.Altitude < legsDeployAltitude {
			e.state.LandingLegsDeployed = true
		}
		e.state.EngineStatus = EngineLandingBurn
	case bandLandingCoast:
		e.tm.Velocity = decayToward(e.tm.Velocity, landingCoastVelocityFloor, landingCoastDecay)
		e.coastDescend(dt)
		if e.tm.Altitude <= landingBurnStartAltitude {
			e.state.LandingBurnStarted = true
		}
		e.state.EngineStatus = EngineLandingCoast
	case bandEntryBurn:
		e.tm.Velocity = decayToward(e.tm.Velocity, entryBurnVelocityFloor, entryBurnDecay)
		e.tm.Altitude = math.Max(e.tm.Altitude+e.tm.Velocity*dt, 0)
		e.tm.Thrust = entryBurnThrust
		e.tm.Throttle = entryBurnThrottle
		e.state.EngineStatus = EngineEntryBurn
	case bandAeroDescent:
		e.tm.Velocity = decayToward(e.tm.Velocity, aeroDescentVelocityFloor, aeroDescentDecay)
		e.coastDescend(dt)
		e.gridFinOscillation()
		e.state.EngineStatus = EngineAeroDescent
	case bandReentryBurn:
		if e.tm.Velocity > reentryBurnVelocityFloor {
			e.tm.Velocity = math.Max(e.tm.Velocity-reentryBurnVelocityStep, reentryBurnVelocityFloor)
		}
		e.tm.Altitude = math.Max(e.tm.Altitude+e.tm.Velocity*dt, 0)
		e.tm.Thrust = reentryBurnThrust
		e.tm.Throttle = reentryBurnThrottle
		e.state.EngineStatus = EngineReentryBurn
	}

	// Acceleration, G load and the secondary propulsion telemetry derive
	// from the thrust and mass at the end of the tick.
	e.tm.Acceleration = e.tm.Thrust/e.tm.Mass - GravityAt(e.tm.Altitude)
	e.tm.GForce = math.Abs(e.tm.Acceleration) / G0
	e.updateLandingPropulsion()
}

// coastDescend applies an unpowered altitude update.
func (e *Engine) coastDescend(dt float64) {
	e.tm.Altitude = math.Max(e.tm.Altitude+e.tm.Velocity*dt, 0)
	e.tm.Thrust = 0
	e.tm.Throttle = 0
}

// landingBurnIntegrate runs a true Euler update of velocity and altitude
// under the given engine thrust, depleting booster mass.
func (e *Engine) landingBurnIntegrate(thrust, dt float64) {
	accel := thrust/e.tm.Mass - GravityAt(e.tm.Altitude)
	e.tm.Velocity += accel * dt
	e.tm.Altitude = math.Max(e.tm.Altitude+e.tm.Velocity*dt, 0)
	massFlow := thrust / (landingIsp * G0)
	e.tm.Mass = math.Max(e.tm.Mass-massFlow*dt, e.vehicle.Stage(1).DryMass)
	e.tm.Thrust = thrust
}

// gridFinOscillation superimposes the grid fin control motion on the
// retrograde attitude.
func (e *Engine) gridFinOscillation() {
	t := e.landingElapsed
	attitude := mat64.NewVector(3, []float64{90, 0, 0})
	oscillation := mat64.NewVector(3, []float64{
		5 * math.Sin(0.8*t),
		3 * math.Sin(0.5*t),
		2 * math.Sin(0.3*t),
	})
	attitude.AddVec(attitude, oscillation)
	e.tm.Pitch = attitude.At(0, 0)
	e.tm.Yaw = attitude.At(1, 0)
	e.tm.Roll = attitude.At(2, 0)
	e.tm.FlightPathAngle = e.tm.Pitch
}

// updateLandingPropulsion recomputes flow rates, turbopump speed and thermal
// telemetry from the thrust currently flying.
func (e *Engine) updateLandingPropulsion() {
	if e.tm.Thrust <= 0 {
		ambient := AtmosphereAt(e.tm.Altitude)
		e.tm.FuelFlowRate = 0
		e.tm.OxidizerFlowRate = 0
		e.tm.TurbopumpSpeed = 0
		e.tm.ChamberPressure = 0
		e.tm.NozzleTemperature = math.Max(e.tm.NozzleTemperature*0.99, ambient.Temperature)
		e.tm.TurbineTemperature = math.Max(e.tm.TurbineTemperature*0.99, ambient.Temperature)
		e.tm.VibrationLevel = 1.5
		return
	}
	massFlow := e.tm.Thrust / (landingIsp * G0)
	e.tm.FuelFlowRate = massFlow * (1 - oxidizerFraction)
	e.tm.OxidizerFlowRate = massFlow * oxidizerFraction
	frac := clamp(e.tm.Thrust/entryBurnThrust, 0, 1)
	e.tm.TurbopumpSpeed = maxTurbopumpSpeed * frac
	e.tm.ChamberPressure = nominalChamberPressure * frac
	e.tm.NozzleTemperature = 300 + 1200*frac
	e.tm.TurbineTemperature = 300 + 600*frac
	e.tm.VibrationLevel = 2 + 4*frac
}

// touchdown parks the vehicle in the terminal LANDED phase.
func (e *Engine) touchdown() {
	e.snapToRest()
	e.state.LandingLegsDeployed = true
	e.state.EngineStatus = EngineShutdown
	e.transition(PhaseLanded)
}
