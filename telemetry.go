package flightsim

// Telemetry is the flat snapshot of all physical readouts, recomputed every
// tick. Every field is always populated: the secondary propulsion parameters
// hold ambient or zero defaults outside of abort and landing so that a
// serialized record never has undefined fields.
type Telemetry struct {
	// Kinematic
	Altitude     float64 // m
	Velocity     float64 // m/s, along the flight path, negative when falling
	Acceleration float64 // m/s^2
	Downrange    float64 // m

	// Orbital
	Apogee          float64 // m
	Perigee         float64 // m
	Inclination     float64 // deg, constant for the flight
	OrbitalVelocity float64 // m/s, circular velocity at current radius

	// Propulsion
	Thrust           float64 // N
	Mass             float64 // kg
	Throttle         float64 // percent
	ChamberPressure  float64 // bar
	ExhaustVelocity  float64 // m/s
	StageOnePropLeft float64 // percent
	StageTwoPropLeft float64 // percent
	TWR              float64
	GForce           float64 // g

	// Environmental
	DynamicPressure float64 // Pa
	MaxQ            float64 // Pa, running maximum across the flight
	MachNumber      float64
	Density         float64 // kg/m^3
	Temperature     float64 // K

	// Attitude
	Pitch           float64 // deg
	Yaw             float64 // deg
	Roll            float64 // deg
	FlightPathAngle float64 // deg

	// Secondary propulsion, meaningful during abort and landing only.
	FuelFlowRate       float64 // kg/s
	OxidizerFlowRate   float64 // kg/s
	TurbopumpSpeed     float64 // rpm
	NozzleTemperature  float64 // K
	TurbineTemperature float64 // K
	VibrationLevel     float64 // g rms
}

// launchSiteInclination is the inclination reported for the whole flight.
const launchSiteInclination = 28.5

func newTelemetry(vehicle VehicleSpec) Telemetry {
	ambient := AtmosphereAt(0)
	return Telemetry{
		Inclination:        launchSiteInclination,
		Mass:               vehicle.LiftoffMass,
		StageOnePropLeft:   100,
		StageTwoPropLeft:   100,
		Density:            ambient.Density,
		Temperature:        ambient.Temperature,
		Pitch:              90,
		FlightPathAngle:    90,
		NozzleTemperature:  ambient.Temperature,
		TurbineTemperature: ambient.Temperature,
	}
}
