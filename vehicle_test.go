package flightsim

import (
	"testing"

	"github.com/gonum/floats"
)

func TestNewVehicleSpec(t *testing.T) {
	first := StageSpec{Name: "s1", DryMass: 100, PropellantMass: 900}
	second := StageSpec{Name: "s2", DryMass: 10, PropellantMass: 90}
	v := NewVehicleSpec("test", first, second, 5, 0.5, 1)
	if !floats.EqualWithinAbs(v.LiftoffMass, 1105, 1e-9) {
		t.Fatalf("liftoff mass %f", v.LiftoffMass)
	}
	if v.Stage(1).Name != "s1" || v.Stage(2).Name != "s2" {
		t.Fatal("stage lookup broken")
	}
	assertPanic(t, func() { v.Stage(0) })
	assertPanic(t, func() { v.Stage(3) })
}

func TestFalcon9Class(t *testing.T) {
	v := Falcon9Class()
	expected := 25600.0 + 395700 + 4000 + 92670 + 13150
	if !floats.EqualWithinAbs(v.LiftoffMass, expected, 1e-6) {
		t.Fatalf("liftoff mass %f, expected %f", v.LiftoffMass, expected)
	}
	first := v.Stage(1)
	if first.SeaLevelThrust >= first.VacuumThrust {
		t.Fatal("first stage must gain thrust toward vacuum")
	}
	// Sanity: the vehicle must actually lift off the pad.
	if first.SeaLevelThrust <= v.LiftoffMass*G0 {
		t.Fatal("liftoff TWR below one")
	}
	second := v.Stage(2)
	if second.SeaLevelThrust != second.VacuumThrust {
		t.Fatal("second stage is a pure vacuum engine")
	}
}

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	if limits.MaxDynamicPressure != 80e3 || limits.MaxGForce != 8 || limits.MaxThrust != 8.5e6 {
		t.Fatalf("unexpected default limits %+v", limits)
	}
}
