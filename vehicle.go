package flightsim

// StageSpec describes one stage of the launch vehicle. It is never mutated
// after construction; burn state lives on the engine.
type StageSpec struct {
	Name           string
	DryMass        float64 // kg
	PropellantMass float64 // kg
	SeaLevelThrust float64 // N
	VacuumThrust   float64 // N
	BurnTime       float64 // s, rated burn duration
	Isp            float64 // s
}

// VehicleSpec is the static description of the full two-stage vehicle.
type VehicleSpec struct {
	Name            string
	Stages          [2]StageSpec
	PayloadMass     float64 // kg
	DragCoefficient float64
	CrossSection    float64 // m^2
	LiftoffMass     float64 // kg, derived at construction
}

// NewVehicleSpec returns a vehicle spec with the liftoff mass derived from the
// stages and payload.
func NewVehicleSpec(name string, first, second StageSpec, payloadMass, dragCoefficient, crossSection float64) VehicleSpec {
	liftoff := first.DryMass + first.PropellantMass + second.DryMass + second.PropellantMass + payloadMass
	return VehicleSpec{name, [2]StageSpec{first, second}, payloadMass, dragCoefficient, crossSection, liftoff}
}

// Stage returns the spec of the given stage number (1 or 2).
func (v VehicleSpec) Stage(number int) StageSpec {
	if number < 1 || number > 2 {
		panic("stage number must be 1 or 2")
	}
	return v.Stages[number-1]
}

// Falcon9Class returns the reference two-stage medium-lift vehicle.
func Falcon9Class() VehicleSpec {
	first := StageSpec{
		Name:           "first stage (9 engines)",
		DryMass:        25600,
		PropellantMass: 395700,
		SeaLevelThrust: 7.607e6,
		VacuumThrust:   8.227e6,
		BurnTime:       162,
		Isp:            296,
	}
	second := StageSpec{
		Name:           "second stage (vacuum engine)",
		DryMass:        4000,
		PropellantMass: 92670,
		SeaLevelThrust: 0.981e6,
		VacuumThrust:   0.981e6,
		BurnTime:       397,
		Isp:            348,
	}
	return NewVehicleSpec("Falcon 9 class", first, second, 13150, 0.5, 10.52)
}

// Limits defines the safety thresholds evaluated by the anomaly detector.
// They do not gate phase transitions.
type Limits struct {
	MaxDynamicPressure float64 // Pa
	MaxGForce          float64 // g
	MaxThrust          float64 // N
}

// DefaultLimits returns the reference structural limits.
func DefaultLimits() Limits {
	return Limits{MaxDynamicPressure: 80e3, MaxGForce: 8, MaxThrust: 8.5e6}
}
