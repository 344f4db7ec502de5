package flightsim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{Filename: "x"}).IsUseless() {
		t.Fatal("a non-CSV config exports nothing")
	}
	if (ExportConfig{Filename: "x", AsCSV: true}).IsUseless() {
		t.Fatal("a CSV config is not useless")
	}
}

func TestStreamTelemetryDrains(t *testing.T) {
	records := make(chan TelemetryRecord, 3)
	for i := 0; i < 3; i++ {
		records <- TelemetryRecord{DT: time.Now(), State: FlightState{Phase: PhasePad}}
	}
	close(records)
	// Must return without writing anything.
	StreamTelemetry(ExportConfig{}, records)
}

func TestStreamTelemetryCSV(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	records := make(chan TelemetryRecord, 2)
	dt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	records <- TelemetryRecord{
		DT:    dt,
		State: FlightState{Phase: PhaseLaunch, MissionTime: 1.0},
		Tm:    Telemetry{Altitude: 42, Velocity: 10},
	}
	records <- TelemetryRecord{
		DT:    dt.Add(TickDuration),
		State: FlightState{Phase: PhaseLaunch, MissionTime: 1.1},
		Tm:    Telemetry{Altitude: 43, Velocity: 11},
	}
	close(records)
	StreamTelemetry(ExportConfig{Filename: "test", AsCSV: true}, records)

	raw, err := os.ReadFile(filepath.Join(dir, "flight-test.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(raw), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header and two rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "jd,datetime,t(s),phase,") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "LAUNCH") || !strings.Contains(lines[1], "42.0") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	// The Julian date column must land in the modern era.
	if !strings.HasPrefix(lines[1], "246") {
		t.Fatalf("suspicious Julian date in %q", lines[1])
	}
}
