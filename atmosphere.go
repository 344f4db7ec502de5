package flightsim

import "math"

/* Exponential atmosphere with a piecewise linear temperature profile. */

const (
	// EarthRadius is the Earth radius in meters.
	EarthRadius = 6.371e6
	// EarthGM is the Earth gravitational parameter in m^3/s^2.
	EarthGM = 3.986004418e14
	// G0 is the standard gravity in m/s^2 (also the Isp reference).
	G0 = 9.80665
	// SeaLevelDensity is the air density at sea level in kg/m^3.
	SeaLevelDensity = 1.225
	// SeaLevelPressure is the static pressure at sea level in Pa.
	SeaLevelPressure = 101325.0
	// SeaLevelTemperature is the temperature at sea level in K.
	SeaLevelTemperature = 288.15
	// ScaleHeight is the density/pressure e-folding altitude in meters.
	ScaleHeight = 8500.0
	// AtmosphereCeiling is the altitude above which the atmosphere is void.
	AtmosphereCeiling = 100e3
	// CosmicBackgroundTemperature applies above the ceiling, in K.
	CosmicBackgroundTemperature = 2.7

	tropopauseAltitude  = 11e3
	stratopauseAltitude = 25e3
	tropoLapseRate      = 6.5e-3 // K/m
	stratoTemperature   = 216.65 // K, isothermal layer
	inversionLapseRate  = 1.0e-3 // K/m
	airGasConstant      = 287.05 // J/(kg K)
	airHeatRatio        = 1.4
)

// Atmosphere holds the ambient conditions at a given altitude.
type Atmosphere struct {
	Density      float64 // kg/m^3
	Pressure     float64 // Pa
	Temperature  float64 // K
	SpeedOfSound float64 // m/s
}

// AtmosphereAt returns the modeled atmosphere at the provided altitude in
// meters. Above the ceiling, density and pressure are zero and the
// temperature is the cosmic background value.
func AtmosphereAt(altitude float64) Atmosphere {
	if altitude < 0 {
		altitude = 0
	}
	if altitude >= AtmosphereCeiling {
		return Atmosphere{0, 0, CosmicBackgroundTemperature, 0}
	}
	var temperature float64
	switch {
	case altitude < tropopauseAltitude:
		temperature = SeaLevelTemperature - tropoLapseRate*altitude
	case altitude < stratopauseAltitude:
		temperature = stratoTemperature
	default:
		temperature = stratoTemperature + inversionLapseRate*(altitude-stratopauseAltitude)
	}
	density := SeaLevelDensity * math.Exp(-altitude/ScaleHeight)
	pressure := SeaLevelPressure * math.Exp(-altitude/ScaleHeight)
	speedOfSound := math.Sqrt(airHeatRatio * airGasConstant * temperature)
	return Atmosphere{density, pressure, temperature, speedOfSound}
}

// DynamicPressure returns 0.5*rho*v^2 for the given ambient conditions.
func (a Atmosphere) DynamicPressure(velocity float64) float64 {
	return 0.5 * a.Density * velocity * velocity
}

// Mach returns the Mach number at the given velocity, or zero above the
// sensible atmosphere.
func (a Atmosphere) Mach(velocity float64) float64 {
	if a.SpeedOfSound == 0 {
		return 0
	}
	return math.Abs(velocity) / a.SpeedOfSound
}

// GravityAt returns the inverse square gravity at the given altitude.
func GravityAt(altitude float64) float64 {
	ratio := EarthRadius / (EarthRadius + altitude)
	return G0 * ratio * ratio
}

// StageThrust returns the pressure compensated thrust of a booster stage at
// the given ambient pressure: the engines gain thrust as pressure drops
// toward vacuum. The second stage never consults this law; it always burns at
// its rated vacuum thrust.
func StageThrust(stage StageSpec, pressure float64) float64 {
	return stage.VacuumThrust - (pressure/SeaLevelPressure)*(stage.VacuumThrust-stage.SeaLevelThrust)
}
