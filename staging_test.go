package flightsim

import (
	"testing"
	"time"
)

// launchToAscent drives a fresh engine into powered ascent.
func launchToAscent(t *testing.T) *Engine {
	e := newTestEngine()
	e.Launch()
	if !advanceUntil(e, 2000, func() bool { return e.State().Phase == PhaseAscent }) {
		t.Fatal("never reached ascent")
	}
	return e
}

func TestManualSeparationFromAscent(t *testing.T) {
	e := launchToAscent(t)
	e.SeparateStage()
	st := e.State()
	if st.Phase != PhaseStageSep {
		t.Fatalf("phase %s after manual separation", st.Phase)
	}
	if st.StageNumber != 2 || st.EngineStatus != EngineSeparation {
		t.Fatalf("unexpected state after separation %+v", st)
	}
	second := e.vehicle.Stage(2)
	expected := second.DryMass + second.PropellantMass + e.vehicle.PayloadMass
	if tm := e.Telemetry(); tm.Mass != expected || tm.Thrust != 0 {
		t.Fatalf("mass %f thrust %f after separation, expected mass %f", tm.Mass, tm.Thrust, expected)
	}
}

func TestSeparationTimerIgnitesSecondStage(t *testing.T) {
	e := launchToAscent(t)
	e.SeparateStage()
	time.Sleep(StageSeparationDelay + 200*time.Millisecond)
	st := e.State()
	if st.Phase != PhaseSecondStage {
		t.Fatalf("phase %s after the separation delay", st.Phase)
	}
	if st.EngineStatus != EngineRunning || st.GuidanceMode != GuidanceGravityTurn {
		t.Fatalf("unexpected state after second stage ignition %+v", st)
	}
}

func TestMECOCoastTriggersSeparation(t *testing.T) {
	e := launchToAscent(t)
	if !advanceUntil(e, 5000, func() bool { return e.State().Phase == PhaseMECO }) {
		t.Fatal("never reached MECO")
	}
	// The coast is mission time, so it takes ticks rather than wall time.
	if !advanceUntil(e, int(mecoCoastTime/TickDuration.Seconds())+2, func() bool {
		return e.State().Phase == PhaseStageSep
	}) {
		t.Fatal("MECO coast never separated")
	}
}

func TestResetCancelsStagingTimer(t *testing.T) {
	e := launchToAscent(t)
	e.SeparateStage()
	e.Reset()
	time.Sleep(StageSeparationDelay + 200*time.Millisecond)
	if st := e.State(); st.Phase != PhasePad {
		t.Fatalf("stale ignition resurrected the flight into %s", st.Phase)
	}
}

func TestAbortCancelsStagingTimer(t *testing.T) {
	e := launchToAscent(t)
	e.SeparateStage()
	e.Abort()
	time.Sleep(StageSeparationDelay + 200*time.Millisecond)
	st := e.State()
	if st.Phase != PhaseAbort && st.Phase != PhaseAbortedStopped {
		t.Fatalf("phase %s, the abort must stick through the separation delay", st.Phase)
	}
}

func TestEnterMECOFreezesPropulsion(t *testing.T) {
	e := launchToAscent(t)
	if !advanceUntil(e, 5000, func() bool { return e.State().Phase == PhaseMECO }) {
		t.Fatal("never reached MECO")
	}
	tm := e.Telemetry()
	if tm.Thrust != 0 || tm.ChamberPressure != 0 {
		t.Fatalf("thrust %f chamber %f after MECO", tm.Thrust, tm.ChamberPressure)
	}
	if st := e.State(); st.EngineStatus != EngineCutoff || st.GuidanceMode != GuidanceCoast {
		t.Fatalf("unexpected MECO state %+v", st)
	}
}
