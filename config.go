package flightsim

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ConfigEnvVar names the environment variable pointing at the directory of
// the flight.toml configuration file.
const ConfigEnvVar = "FLIGHTSIM_CONFIG"

// LoadVehicleConfig reads the vehicle and limits configuration from the
// directory named by FLIGHTSIM_CONFIG. It panics on a missing or malformed
// configuration: a flight cannot sensibly proceed without a vehicle.
func LoadVehicleConfig() (VehicleSpec, Limits) {
	confPath := os.Getenv(ConfigEnvVar)
	if confPath == "" {
		panic(fmt.Sprintf("environment variable `%s` is missing or empty", ConfigEnvVar))
	}
	v := viper.New()
	v.SetConfigName("flight")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/flight.toml not found", confPath))
	}

	first := stageFromConfig(v, "stage1")
	second := stageFromConfig(v, "stage2")
	vehicle := NewVehicleSpec(
		v.GetString("vehicle.name"),
		first, second,
		v.GetFloat64("vehicle.payload_mass"),
		v.GetFloat64("vehicle.drag_coefficient"),
		v.GetFloat64("vehicle.cross_section"),
	)
	if vehicle.LiftoffMass <= 0 {
		panic(fmt.Errorf("vehicle `%s` has no liftoff mass", vehicle.Name))
	}

	limits := DefaultLimits()
	if v.IsSet("limits.max_dynamic_pressure") {
		limits.MaxDynamicPressure = v.GetFloat64("limits.max_dynamic_pressure")
	}
	if v.IsSet("limits.max_g_force") {
		limits.MaxGForce = v.GetFloat64("limits.max_g_force")
	}
	if v.IsSet("limits.max_thrust") {
		limits.MaxThrust = v.GetFloat64("limits.max_thrust")
	}
	return vehicle, limits
}

func stageFromConfig(v *viper.Viper, key string) StageSpec {
	return StageSpec{
		Name:           v.GetString(key + ".name"),
		DryMass:        v.GetFloat64(key + ".dry_mass"),
		PropellantMass: v.GetFloat64(key + ".propellant_mass"),
		SeaLevelThrust: v.GetFloat64(key + ".sea_level_thrust"),
		VacuumThrust:   v.GetFloat64(key + ".vacuum_thrust"),
		BurnTime:       v.GetFloat64(key + ".burn_time"),
		Isp:            v.GetFloat64(key + ".isp"),
	}
}
