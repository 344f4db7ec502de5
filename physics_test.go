package flightsim

import (
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

func TestDragForce(t *testing.T) {
	vehicle := Falcon9Class()
	atm := AtmosphereAt(0)
	drag := dragForce(atm, 100, vehicle)
	expected := 0.5 * SeaLevelDensity * 1e4 * vehicle.DragCoefficient * vehicle.CrossSection
	if !floats.EqualWithinAbs(drag, expected, 1e-6) {
		t.Fatalf("drag %f, expected %f", drag, expected)
	}
	if dragForce(AtmosphereAt(150e3), 5000, vehicle) != 0 {
		t.Fatal("drag must vanish above the atmosphere")
	}
	// Drag is a magnitude; the sign convention lives in the integrator.
	if dragForce(atm, -100, vehicle) != drag {
		t.Fatal("drag magnitude must not depend on the velocity sign")
	}
}

func TestPropellantLeft(t *testing.T) {
	e := newTestEngine()
	if e.propellantLeft(1) != 100 || e.propellantLeft(2) != 100 {
		t.Fatal("both stages must start full")
	}
	first := e.vehicle.Stage(1)
	e.burnTime[0] = first.BurnTime / 2
	if !floats.EqualWithinAbs(e.propellantLeft(1), 50, 1e-9) {
		t.Fatalf("propellant at half burn %f", e.propellantLeft(1))
	}
	e.burnTime[0] = first.BurnTime * 2
	if e.propellantLeft(1) != 0 {
		t.Fatal("overburn must clamp at zero")
	}
}

func TestDryMassFloor(t *testing.T) {
	e := newTestEngine()
	second := e.vehicle.Stage(2)
	first := e.vehicle.Stage(1)
	stacked := first.DryMass + second.DryMass + second.PropellantMass + e.vehicle.PayloadMass
	if !floats.EqualWithinAbs(e.dryMassFloor(), stacked, 1e-9) {
		t.Fatalf("stage 1 floor %f, expected %f", e.dryMassFloor(), stacked)
	}
	e.state.StageNumber = 2
	if !floats.EqualWithinAbs(e.dryMassFloor(), second.DryMass+e.vehicle.PayloadMass, 1e-9) {
		t.Fatalf("stage 2 floor %f", e.dryMassFloor())
	}
}

// TestSecondStageIgnoresAmbientPressure pins the thrust law split: only the
// booster is pressure compensated. A configured second stage with a lower
// sea-level rating must still burn at its vacuum thrust even deep in the
// atmosphere.
func TestSecondStageIgnoresAmbientPressure(t *testing.T) {
	vehicle := Falcon9Class()
	vehicle.Stages[1].SeaLevelThrust = 0.5e6
	e := NewEngine(vehicle, DefaultLimits())
	e.SetLogger(kitlog.NewNopLogger())
	e.state.Phase = PhaseSecondStage
	e.state.StageNumber = 2
	e.state.EngineStatus = EngineRunning
	e.state.GuidanceMode = GuidanceGravityTurn
	e.tm.Altitude = 1000

	tm := e.Advance()
	if !floats.EqualWithinAbs(tm.Thrust, vehicle.Stages[1].VacuumThrust, 1e-6) {
		t.Fatalf("second stage thrust %f at 1 km, expected the vacuum rating %f",
			tm.Thrust, vehicle.Stages[1].VacuumThrust)
	}
}

func TestGroundClampZeroesVelocity(t *testing.T) {
	e := newTestEngine()
	e.tm.Velocity = -50
	e.tm.Altitude = 1
	e.integrate(0, TickDuration.Seconds(), AtmosphereAt(1))
	if e.tm.Altitude != 0 || e.tm.Velocity != 0 {
		t.Fatalf("ground clamp failed: alt %f vel %f", e.tm.Altitude, e.tm.Velocity)
	}
}

func TestDownrangeFollowsPitch(t *testing.T) {
	e := newTestEngine()
	e.tm.Velocity = 100
	e.tm.Altitude = 10e3
	e.tm.Mass = 100e3
	e.tm.Pitch = 90
	e.integrate(2e6, TickDuration.Seconds(), AtmosphereAt(10e3))
	if e.tm.Downrange > 1e-6 {
		t.Fatalf("vertical flight accrued downrange %f", e.tm.Downrange)
	}
	e.tm.Pitch = 45
	before := e.tm.Downrange
	e.integrate(2e6, TickDuration.Seconds(), AtmosphereAt(10e3))
	if e.tm.Downrange <= before {
		t.Fatal("pitched flight must accrue downrange")
	}
}
