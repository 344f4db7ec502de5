package flightsim

import (
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// TelemetryRecord stamps one telemetry snapshot for export.
type TelemetryRecord struct {
	DT    time.Time
	State FlightState
	Tm    Telemetry
}

// ExportConfig configures the exporting of the simulation.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	Timestamp bool // append the start time to the file name
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

const telemetryCSVHeader = "jd,datetime,t(s),phase,altitude(m),velocity(m/s),acceleration(m/s2),downrange(m),mass(kg),thrust(N),throttle(%),q(Pa),maxQ(Pa),mach,apogee(m),perigee(m),pitch(deg)"

// StreamTelemetry drains the record channel into a CSV file until the channel
// is closed. Run it in its own goroutine, as the propagation does.
func StreamTelemetry(conf ExportConfig, records <-chan TelemetryRecord) {
	if conf.IsUseless() {
		for range records {
			// Drain to not block the producer.
		}
		return
	}
	name := conf.Filename
	if conf.Timestamp {
		name += time.Now().Format("-2006-01-02-150405")
	}
	f, err := os.Create(fmt.Sprintf("./flight-%s.csv", name))
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if _, err := f.WriteString(telemetryCSVHeader); err != nil {
		panic(err)
	}
	for rec := range records {
		tm := rec.Tm
		row := fmt.Sprintf("\n%.6f,%s,%.1f,%s,%.1f,%.2f,%.3f,%.1f,%.1f,%.0f,%.1f,%.1f,%.1f,%.3f,%.1f,%.1f,%.2f",
			julian.TimeToJD(rec.DT), rec.DT.UTC().Format("2006-01-02 15:04:05"),
			rec.State.MissionTime, rec.State.Phase,
			tm.Altitude, tm.Velocity, tm.Acceleration, tm.Downrange,
			tm.Mass, tm.Thrust, tm.Throttle,
			tm.DynamicPressure, tm.MaxQ, tm.MachNumber,
			tm.Apogee, tm.Perigee, tm.Pitch)
		if _, err := f.WriteString(row); err != nil {
			panic(err)
		}
	}
}
