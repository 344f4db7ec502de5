package flightsim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonum/floats"
)

const testFlightTOML = `[vehicle]
name = "test vehicle"
payload_mass = 1000.0
drag_coefficient = 0.4
cross_section = 8.0

[stage1]
name = "booster"
dry_mass = 20000.0
propellant_mass = 380000.0
sea_level_thrust = 7.0e6
vacuum_thrust = 7.5e6
burn_time = 160.0
isp = 290.0

[stage2]
name = "upper"
dry_mass = 3500.0
propellant_mass = 90000.0
sea_level_thrust = 0.9e6
vacuum_thrust = 0.9e6
burn_time = 390.0
isp = 345.0

[limits]
max_g_force = 6.0
`

func TestLoadVehicleConfigMissingEnv(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	assertPanic(t, func() {
		LoadVehicleConfig()
	})
}

func TestLoadVehicleConfigMissingFile(t *testing.T) {
	t.Setenv(ConfigEnvVar, t.TempDir())
	assertPanic(t, func() {
		LoadVehicleConfig()
	})
}

func TestLoadVehicleConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "flight.toml"), []byte(testFlightTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigEnvVar, dir)
	vehicle, limits := LoadVehicleConfig()
	if vehicle.Name != "test vehicle" {
		t.Fatalf("vehicle name %q", vehicle.Name)
	}
	if !floats.EqualWithinAbs(vehicle.LiftoffMass, 494500, 1e-6) {
		t.Fatalf("liftoff mass %f", vehicle.LiftoffMass)
	}
	if vehicle.Stage(1).Isp != 290 || vehicle.Stage(2).BurnTime != 390 {
		t.Fatal("stage fields not loaded")
	}
	// Only max_g_force is overridden; the rest keeps the defaults.
	if limits.MaxGForce != 6 {
		t.Fatalf("g limit %f", limits.MaxGForce)
	}
	if limits.MaxDynamicPressure != DefaultLimits().MaxDynamicPressure {
		t.Fatalf("q limit %f lost its default", limits.MaxDynamicPressure)
	}
	if limits.MaxThrust != DefaultLimits().MaxThrust {
		t.Fatalf("thrust limit %f lost its default", limits.MaxThrust)
	}
}

func TestLoadVehicleConfigZeroMass(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "flight.toml"), []byte("[vehicle]\nname = \"empty\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigEnvVar, dir)
	assertPanic(t, func() {
		LoadVehicleConfig()
	})
}
