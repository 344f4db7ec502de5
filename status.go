package flightsim

// Phase defines an enum of flight phases.
type Phase uint8

const (
	// PhasePad is the initial phase, vehicle on the pad.
	PhasePad Phase = iota + 1
	// PhaseIgnition runs the ignition sequence prior to liftoff.
	PhaseIgnition
	// PhaseLaunch covers liftoff until the vehicle clears low altitude.
	PhaseLaunch
	// PhaseAscent is first-stage powered flight.
	PhaseAscent
	// PhaseMECO is the coast after main engine cutoff.
	PhaseMECO
	// PhaseStageSep is the coast between separation and second-stage ignition.
	PhaseStageSep
	// PhaseSecondStage is second-stage powered flight.
	PhaseSecondStage
	// PhaseOrbit is the terminal phase of a nominal flight.
	PhaseOrbit
	// PhaseAbort is an uncontrolled descent after an abort command.
	PhaseAbort
	// PhaseAbortedStopped is the terminal phase of an aborted flight.
	PhaseAbortedStopped
	// PhaseLanding is the propulsive-return sequence.
	PhaseLanding
	// PhaseLanded is the terminal phase of a propulsive return.
	PhaseLanded
)

func (p Phase) String() string {
	switch p {
	case PhasePad:
		return "PAD"
	case PhaseIgnition:
		return "IGNITION"
	case PhaseLaunch:
		return "LAUNCH"
	case PhaseAscent:
		return "ASCENT"
	case PhaseMECO:
		return "MECO"
	case PhaseStageSep:
		return "STAGE_SEP"
	case PhaseSecondStage:
		return "SECOND_STAGE"
	case PhaseOrbit:
		return "ORBIT"
	case PhaseAbort:
		return "ABORT"
	case PhaseAbortedStopped:
		return "ABORTED_STOPPED"
	case PhaseLanding:
		return "LANDING"
	case PhaseLanded:
		return "LANDED"
	}
	panic("cannot stringify unknown phase")
}

// Absorbing returns whether the tick operation is a no-op in this phase.
func (p Phase) Absorbing() bool {
	switch p {
	case PhasePad, PhaseOrbit, PhaseAbortedStopped, PhaseLanded:
		return true
	}
	return false
}

// Terminal returns whether this phase ends the flight.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseOrbit, PhaseAbortedStopped, PhaseLanded:
		return true
	}
	return false
}

// EngineStatus defines an enum of engine status codes. The human readable
// labels only exist at the presentation boundary, via String.
type EngineStatus uint8

const (
	// EngineShutdown means no engine is burning.
	EngineShutdown EngineStatus = iota + 1
	// EngineIgnitionSequence means the first stage is spooling up.
	EngineIgnitionSequence
	// EngineRunning means the active stage is at commanded throttle.
	EngineRunning
	// EngineCutoff means the first stage burned out.
	EngineCutoff
	// EngineSeparation means the stages just separated.
	EngineSeparation
	// EngineSECO means the second stage shut down on orbit.
	EngineSECO
	// EngineReentryBurn is the three-engine braking burn above 50 km.
	EngineReentryBurn
	// EngineAeroDescent is the unpowered grid-fin controlled descent.
	EngineAeroDescent
	// EngineEntryBurn is the three-engine burn between 2 and 7 km.
	EngineEntryBurn
	// EngineLandingCoast is the unpowered fall before the landing burn.
	EngineLandingCoast
	// EngineLandingBurn is the single-engine hoverslam burn.
	EngineLandingBurn
	// EngineTouchdown is the final throttled approach below 20 m.
	EngineTouchdown
	// EngineAborted means the abort sequencer owns the vehicle.
	EngineAborted
)

var engineStatusLabels = map[EngineStatus]string{
	EngineShutdown:         "shutdown",
	EngineIgnitionSequence: "ignition sequence",
	EngineRunning:          "running",
	EngineCutoff:           "main engine cutoff",
	EngineSeparation:       "stage separation",
	EngineSECO:             "second engine cutoff",
	EngineReentryBurn:      "re-entry burn (3 engines)",
	EngineAeroDescent:      "aerodynamic descent",
	EngineEntryBurn:        "entry burn (3 engines)",
	EngineLandingCoast:     "landing coast",
	EngineLandingBurn:      "landing burn (1 engine)",
	EngineTouchdown:        "terminal touchdown",
	EngineAborted:          "aborted",
}

func (s EngineStatus) String() string {
	if label, found := engineStatusLabels[s]; found {
		return label
	}
	panic("cannot stringify unknown engine status")
}

// GuidanceMode defines an enum of guidance modes.
type GuidanceMode uint8

const (
	// GuidancePrelaunch holds the vehicle vertical on the pad.
	GuidancePrelaunch GuidanceMode = iota + 1
	// GuidanceGravityTurn flies the altitude-keyed pitch program.
	GuidanceGravityTurn
	// GuidanceCoast flies unpowered between burns.
	GuidanceCoast
	// GuidanceOrbital holds attitude on orbit.
	GuidanceOrbital
	// GuidanceAbort is the passive abort descent.
	GuidanceAbort
	// GuidanceLanding flies the propulsive return.
	GuidanceLanding
)

func (m GuidanceMode) String() string {
	switch m {
	case GuidancePrelaunch:
		return "prelaunch"
	case GuidanceGravityTurn:
		return "gravity turn"
	case GuidanceCoast:
		return "coast"
	case GuidanceOrbital:
		return "orbital"
	case GuidanceAbort:
		return "abort"
	case GuidanceLanding:
		return "landing"
	}
	panic("cannot stringify unknown guidance mode")
}
