package flightsim

import "math"

/* Abort sequencer: decay model of an uncontrolled descent to rest. */

// Per-parameter decay multipliers applied each tick while in ABORT. Named so
// they can be exercised independently of the integration loop.
const (
	abortAltitudeDecay    = 0.85
	abortVelocityDecay    = 0.75
	abortFlowDecay        = 0.70
	abortTurbopumpDecay   = 0.75
	abortThermalDecay     = 0.88
	abortChamberDecay     = 0.80
	abortVibrationDecay   = 0.85
	abortMassDecay        = 0.95
	abortLowAltitudeDecay = 0.5 // extra factor below abortLowAltitude

	abortThermalFloor = 300.0 // K
	abortMassFraction = 0.30  // of total liftoff mass
	abortLowAltitude  = 100.0 // m
	abortRestAltitude = 1.0   // m, below this the vehicle snaps to rest

	// abortVibrationOnset is the vibration level reported when the abort
	// sequencer takes over, in g rms.
	abortVibrationOnset = 8.5
)

// stepAbort advances one tick of the abort descent. Mission time is frozen by
// the caller; only the physical telemetry decays.
func (e *Engine) stepAbort() {
	e.tm.Thrust = 0
	e.tm.Throttle = 0
	e.tm.TWR = 0
	e.tm.Acceleration = -G0
	e.tm.GForce = 1

	factor := 1.0
	if e.tm.Altitude < abortLowAltitude {
		factor = abortLowAltitudeDecay
	}
	e.tm.Altitude *= abortAltitudeDecay * factor
	e.tm.Velocity *= abortVelocityDecay * factor
	e.tm.Downrange += math.Abs(e.tm.Velocity) * TickDuration.Seconds()

	e.tm.Mass = math.Max(e.tm.Mass*abortMassDecay, abortMassFraction*e.vehicle.LiftoffMass)
	e.tm.ChamberPressure *= abortChamberDecay
	e.tm.FuelFlowRate *= abortFlowDecay
	e.tm.OxidizerFlowRate *= abortFlowDecay
	e.tm.TurbopumpSpeed *= abortTurbopumpDecay
	e.tm.NozzleTemperature = math.Max(e.tm.NozzleTemperature*abortThermalDecay, abortThermalFloor)
	e.tm.TurbineTemperature = math.Max(e.tm.TurbineTemperature*abortThermalDecay, abortThermalFloor)
	e.tm.VibrationLevel *= abortVibrationDecay

	if e.tm.Altitude < abortRestAltitude || (e.tm.Altitude == 0 && e.tm.Velocity == 0) {
		e.snapToRest()
		e.transition(PhaseAbortedStopped)
	}
}

// snapToRest zeroes all motion and propulsion telemetry once the aborted
// vehicle is down.
func (e *Engine) snapToRest() {
	ambient := AtmosphereAt(0)
	e.tm.Altitude = 0
	e.tm.Velocity = 0
	e.tm.Acceleration = 0
	e.tm.GForce = 0
	e.tm.Thrust = 0
	e.tm.Throttle = 0
	e.tm.TWR = 0
	e.tm.DynamicPressure = 0
	e.tm.MachNumber = 0
	e.tm.ChamberPressure = 0
	e.tm.FuelFlowRate = 0
	e.tm.OxidizerFlowRate = 0
	e.tm.TurbopumpSpeed = 0
	e.tm.NozzleTemperature = ambient.Temperature
	e.tm.TurbineTemperature = ambient.Temperature
	e.tm.VibrationLevel = 0
	e.tm.Density = ambient.Density
	e.tm.Temperature = ambient.Temperature
}
