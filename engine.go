package flightsim

import (
	"math"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// TickDuration is the fixed step of the simulation; the external driver
	// is expected to call Advance at this cadence.
	TickDuration = 100 * time.Millisecond

	// ascentStartAltitude promotes LAUNCH to ASCENT.
	ascentStartAltitude = 1000.0 // m
	// targetOrbitAltitude and targetOrbitVelocity are the mission targets
	// ending second stage flight.
	targetOrbitAltitude = 400e3  // m
	targetOrbitVelocity = 7660.0 // m/s

	ignitionChamberRamp = 0.05 // fraction of nominal per tick
	ignitionChamberHold = 0.4  // fraction of nominal held until liftoff
)

/* Handles the flight phase dispatch and the command surface. */

// FlightState is the mutable per-flight state owned by the engine.
type FlightState struct {
	Phase               Phase
	StageNumber         int
	IgnitionArmed       bool
	EngineStatus        EngineStatus
	GuidanceMode        GuidanceMode
	ThrottleLevel       float64 // percent, commanded
	MissionTime         float64 // s, frozen during abort and landing
	AbortFlag           bool
	LandingBurnStarted  bool
	LandingLegsDeployed bool
}

// Engine is one flight simulation instance. It owns the flight state and the
// telemetry exclusively; external collaborators drive it through the command
// methods and read snapshots. It exposes no internal concurrency besides the
// staging ignition timer, which the engine lock serializes against.
type Engine struct {
	vehicle VehicleSpec
	limits  Limits

	state     FlightState
	tm        Telemetry
	burnTime  [2]float64 // s, per stage accumulated burn
	maxQGuard maxQGuard

	mecoMissionTime float64
	landingElapsed  float64
	sepTimer        *time.Timer

	logger kitlog.Logger
	mu     sync.Mutex
}

// NewEngine returns a new engine on the pad with the provided vehicle and
// safety limits.
func NewEngine(vehicle VehicleSpec, limits Limits) *Engine {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "vehicle", vehicle.Name)
	e := &Engine{vehicle: vehicle, limits: limits, logger: klog}
	e.resetState()
	return e
}

// SetLogger replaces the engine logger.
func (e *Engine) SetLogger(logger kitlog.Logger) {
	e.mu.Lock()
	e.logger = logger
	e.mu.Unlock()
}

func (e *Engine) resetState() {
	e.state = FlightState{
		Phase:         PhasePad,
		StageNumber:   1,
		EngineStatus:  EngineShutdown,
		GuidanceMode:  GuidancePrelaunch,
		ThrottleLevel: fullThrottle,
	}
	e.tm = newTelemetry(e.vehicle)
	e.burnTime = [2]float64{}
	e.maxQGuard = maxQGuard{}
	e.mecoMissionTime = 0
	e.landingElapsed = 0
}

// Reset cancels any pending staging event and returns the engine to a fresh
// pad state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelStaging()
	e.resetState()
	e.logger.Log("level", "notice", "subsys", "flight", "status", "reset")
}

// ArmIgnition arms the ignition system. Valid only on the pad.
func (e *Engine) ArmIgnition() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase != PhasePad {
		return
	}
	e.state.IgnitionArmed = true
	e.logger.Log("level", "info", "subsys", "flight", "status", "ignition armed")
}

// StartIgnitionSequence begins the ignition sequence. Valid only once armed.
func (e *Engine) StartIgnitionSequence() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.IgnitionArmed || e.state.Phase != PhasePad {
		return
	}
	e.state.EngineStatus = EngineIgnitionSequence
	e.transition(PhaseIgnition)
}

// Launch lifts off. Valid from IGNITION, or directly from PAD for externally
// driven quick-launch flows.
func (e *Engine) Launch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase != PhaseIgnition && e.state.Phase != PhasePad {
		return
	}
	e.state.EngineStatus = EngineRunning
	e.state.GuidanceMode = GuidanceGravityTurn
	e.state.ThrottleLevel = fullThrottle
	e.logger.Log("level", "notice", "subsys", "flight", "status", "liftoff")
	e.transition(PhaseLaunch)
}

// Abort force-transitions to the abort descent from any phase: thrust is
// zeroed at once and the decay model owns the vehicle.
func (e *Engine) Abort() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase == PhaseAbort || e.state.Phase == PhaseAbortedStopped {
		return
	}
	e.cancelStaging()
	e.state.AbortFlag = true
	e.state.ThrottleLevel = 0
	e.tm.Thrust = 0
	e.tm.Throttle = 0
	e.state.EngineStatus = EngineAborted
	e.state.GuidanceMode = GuidanceAbort
	e.tm.VibrationLevel = abortVibrationOnset
	e.logger.Log("level", "critical", "subsys", "flight", "status", "abort", "alt(m)", e.tm.Altitude)
	e.transition(PhaseAbort)
}

// InitiateLanding force-transitions to the propulsive return from any phase.
func (e *Engine) InitiateLanding() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase == PhaseLanding || e.state.Phase == PhaseLanded {
		return
	}
	e.cancelStaging()
	e.state.LandingBurnStarted = false
	e.state.LandingLegsDeployed = false
	e.state.GuidanceMode = GuidanceLanding
	e.landingElapsed = 0
	e.logger.Log("level", "notice", "subsys", "flight", "status", "landing initiated", "alt(m)", e.tm.Altitude)
	e.transition(PhaseLanding)
}

// SetThrottle clamps and stores the commanded throttle. It only takes effect
// while a phase consumes throttle.
func (e *Engine) SetThrottle(level float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.ThrottleLevel = clamp(level, 0, 100)
}

// CheckAnomalies evaluates the current telemetry against the safety limits.
func (e *Engine) CheckAnomalies() []Anomaly {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CheckAnomalies(e.tm, e.limits)
}

// State returns a copy of the flight state.
func (e *Engine) State() FlightState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Telemetry returns a copy of the telemetry snapshot.
func (e *Engine) Telemetry() Telemetry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tm
}

// LogStatus logs the state of the flight.
func (e *Engine) LogStatus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger.Log("level", "info", "subsys", "flight", "phase", e.state.Phase, "t(s)", e.state.MissionTime, "alt(m)", e.tm.Altitude, "vel(m/s)", e.tm.Velocity, "mass(kg)", e.tm.Mass)
}

// Advance runs one fixed step of the simulation and returns the updated
// telemetry. In absorbing phases it is a no-op returning the frozen
// snapshot. Mission time is frozen during abort and landing although the
// physics still updates.
func (e *Engine) Advance() Telemetry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase.Absorbing() {
		return e.tm
	}

	switch e.state.Phase {
	case PhaseAbort:
		e.stepAbort()
	case PhaseLanding:
		e.stepLanding()
	default:
		e.state.MissionTime += TickDuration.Seconds()
		e.stepFlight()
	}

	e.updateEnvironment()
	e.updateOrbitalEstimate()
	e.evaluateTransitions()
	return e.tm
}

// stepFlight dispatches the time-advancing phases.
func (e *Engine) stepFlight() {
	switch e.state.Phase {
	case PhaseIgnition:
		e.tm.ChamberPressure = math.Min(
			e.tm.ChamberPressure+ignitionChamberRamp*nominalChamberPressure,
			ignitionChamberHold*nominalChamberPressure)
		e.tm.VibrationLevel = 1.0
	case PhaseLaunch, PhaseAscent, PhaseSecondStage:
		e.tm.Pitch = TargetPitch(e.tm.Altitude)
		e.tm.FlightPathAngle = e.tm.Pitch
		e.stepPowered()
	case PhaseMECO, PhaseStageSep:
		e.stepCoast()
	}
}

// updateEnvironment refreshes the atmosphere-derived telemetry and the
// running max-Q.
func (e *Engine) updateEnvironment() {
	atm := AtmosphereAt(e.tm.Altitude)
	e.tm.Density = atm.Density
	e.tm.Temperature = atm.Temperature
	e.tm.MachNumber = atm.Mach(e.tm.Velocity)
	e.tm.DynamicPressure = atm.DynamicPressure(e.tm.Velocity)
	if e.tm.DynamicPressure > e.tm.MaxQ {
		e.tm.MaxQ = e.tm.DynamicPressure
	}
}

// updateOrbitalEstimate refreshes the orbital telemetry.
func (e *Engine) updateOrbitalEstimate() {
	est := EstimateOrbit(e.tm.Altitude, e.tm.Velocity)
	e.tm.Apogee = est.Apogee
	e.tm.Perigee = est.Perigee
	e.tm.OrbitalVelocity = est.OrbitalVelocity
}

// evaluateTransitions runs the phase transition predicates once per tick,
// after the phase updater.
func (e *Engine) evaluateTransitions() {
	switch e.state.Phase {
	case PhaseLaunch:
		if e.tm.Altitude > ascentStartAltitude {
			e.transition(PhaseAscent)
		}
	case PhaseAscent:
		first := e.vehicle.Stage(1)
		if e.propellantLeft(1) <= 0 || e.burnTime[0] >= first.BurnTime {
			e.enterMECO()
		}
	case PhaseMECO:
		if e.state.MissionTime-e.mecoMissionTime >= mecoCoastTime {
			e.separateStage()
		}
	case PhaseSecondStage:
		orbitReached := e.tm.Altitude >= targetOrbitAltitude && e.tm.Velocity >= targetOrbitVelocity
		if e.propellantLeft(2) <= 0 || orbitReached {
			e.enterOrbit()
		}
	}
}

// enterOrbit ends a nominal flight: SECO and the terminal ORBIT phase.
func (e *Engine) enterOrbit() {
	e.tm.Thrust = 0
	e.tm.Throttle = 0
	e.tm.TWR = 0
	e.tm.ChamberPressure = 0
	e.state.EngineStatus = EngineSECO
	e.state.GuidanceMode = GuidanceOrbital
	e.logger.Log("level", "notice", "subsys", "flight", "status", "orbit", "alt(m)", e.tm.Altitude, "vel(m/s)", e.tm.Velocity)
	e.transition(PhaseOrbit)
}

// transition moves to the next phase with a log line. Callers hold the
// engine lock.
func (e *Engine) transition(next Phase) {
	if e.state.Phase == next {
		return
	}
	e.logger.Log("level", "info", "subsys", "flight", "from", e.state.Phase, "to", next, "t(s)", e.state.MissionTime)
	e.state.Phase = next
}
