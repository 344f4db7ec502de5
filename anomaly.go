package flightsim

import (
	"fmt"
	"math"
)

// Severity defines an enum of anomaly severities.
type Severity uint8

const (
	// SeverityWarning is advisory telemetry.
	SeverityWarning Severity = iota + 1
	// SeverityCritical signals the orchestrator may want to abort. The
	// engine itself never self aborts.
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	}
	panic("cannot stringify unknown severity")
}

// Anomaly is one limit violation found in a telemetry snapshot.
type Anomaly struct {
	Parameter string
	Value     float64
	Limit     float64
	Severity  Severity
	Message   string
}

// CheckAnomalies evaluates the snapshot against the safety limits. All
// comparisons are strictly greater than: a reading exactly at the limit is
// nominal.
func CheckAnomalies(tm Telemetry, limits Limits) []Anomaly {
	var anomalies []Anomaly
	if tm.DynamicPressure > limits.MaxDynamicPressure {
		anomalies = append(anomalies, Anomaly{
			Parameter: "dynamic pressure",
			Value:     tm.DynamicPressure,
			Limit:     limits.MaxDynamicPressure,
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("dynamic pressure %.0f Pa exceeds limit %.0f Pa", tm.DynamicPressure, limits.MaxDynamicPressure),
		})
	}
	if gee := math.Abs(tm.GForce); gee > limits.MaxGForce {
		anomalies = append(anomalies, Anomaly{
			Parameter: "g-force",
			Value:     gee,
			Limit:     limits.MaxGForce,
			Severity:  SeverityCritical,
			Message:   fmt.Sprintf("acceleration %.2f g exceeds limit %.2f g", gee, limits.MaxGForce),
		})
	}
	if tm.Thrust > limits.MaxThrust {
		anomalies = append(anomalies, Anomaly{
			Parameter: "thrust",
			Value:     tm.Thrust,
			Limit:     limits.MaxThrust,
			Severity:  SeverityCritical,
			Message:   fmt.Sprintf("thrust %.0f N exceeds limit %.0f N", tm.Thrust, limits.MaxThrust),
		})
	}
	return anomalies
}
