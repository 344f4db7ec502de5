package flightsim

import "time"

const (
	// mecoCoastTime is the simulated coast between MECO and separation, in
	// seconds of mission time.
	mecoCoastTime = 3.0

	// StageSeparationDelay is the wall clock delay between separation and
	// second stage ignition. It is independent of the simulation tick
	// cadence, hence the deferred timer rather than a mission time
	// predicate.
	StageSeparationDelay = 2 * time.Second
)

// SeparateStage is the manual separation override. Valid during ASCENT
// (forcing MECO bookkeeping first) and MECO; a silent no-op otherwise.
func (e *Engine) SeparateStage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.separateStage()
}

// separateStage performs the separation: stage index two, instantaneous mass
// discontinuity, and the deferred second stage ignition. Callers hold the
// engine lock.
func (e *Engine) separateStage() {
	switch e.state.Phase {
	case PhaseAscent:
		e.enterMECO()
	case PhaseMECO:
	default:
		return
	}
	second := e.vehicle.Stage(2)
	e.state.StageNumber = 2
	e.tm.Mass = second.DryMass + second.PropellantMass + e.vehicle.PayloadMass
	e.tm.Thrust = 0
	e.state.EngineStatus = EngineSeparation
	e.transition(PhaseStageSep)
	e.logger.Log("level", "notice", "subsys", "staging", "status", "separated", "mass(kg)", e.tm.Mass)
	e.sepTimer = time.AfterFunc(StageSeparationDelay, e.igniteSecondStage)
}

// igniteSecondStage fires from the separation timer. If an abort, landing or
// reset preempted the coast, the stale ignition must not resurrect the
// flight.
func (e *Engine) igniteSecondStage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase != PhaseStageSep {
		return
	}
	e.sepTimer = nil
	e.state.EngineStatus = EngineRunning
	e.state.GuidanceMode = GuidanceGravityTurn
	e.logger.Log("level", "notice", "subsys", "staging", "status", "second stage ignition")
	e.transition(PhaseSecondStage)
}

// cancelStaging stops any pending ignition timer. Callers hold the engine
// lock.
func (e *Engine) cancelStaging() {
	if e.sepTimer != nil {
		e.sepTimer.Stop()
		e.sepTimer = nil
	}
}

// enterMECO shuts the first stage down and starts the post-cutoff coast.
// Callers hold the engine lock.
func (e *Engine) enterMECO() {
	e.tm.Thrust = 0
	e.tm.ChamberPressure = 0
	e.state.EngineStatus = EngineCutoff
	e.state.GuidanceMode = GuidanceCoast
	e.mecoMissionTime = e.state.MissionTime
	e.logger.Log("level", "notice", "subsys", "prop", "status", "MECO", "t(s)", e.state.MissionTime, "alt(m)", e.tm.Altitude)
	e.transition(PhaseMECO)
}
