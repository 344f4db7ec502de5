package main

import (
	"flag"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/RishitRohan/flightsim"
)

var (
	scenario  = flag.String("scenario", "nominal", "flight scenario: nominal, abort or landing")
	abortTime = flag.Float64("abort-at", 70, "mission time of the abort command, seconds (abort scenario)")
	csvName   = flag.String("csv", "", "export telemetry to ./flight-<name>.csv")
	realtime  = flag.Bool("realtime", false, "tick at wall clock cadence instead of as fast as possible")
)

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "subsys", "driver")

	vehicle := flightsim.Falcon9Class()
	limits := flightsim.DefaultLimits()
	if os.Getenv(flightsim.ConfigEnvVar) != "" {
		vehicle, limits = flightsim.LoadVehicleConfig()
	}
	engine := flightsim.NewEngine(vehicle, limits)

	conf := flightsim.ExportConfig{Filename: *csvName, AsCSV: *csvName != "", Timestamp: true}
	records := make(chan flightsim.TelemetryRecord, 1000)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		flightsim.StreamTelemetry(conf, records)
	}()

	engine.ArmIgnition()
	engine.StartIgnitionSequence()
	engine.Launch()

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(flightsim.TickDuration)
		defer ticker.Stop()
	}

	landingStarted := false
	lastLog := 0.0
	for {
		if ticker != nil {
			<-ticker.C
		}
		tm := engine.Advance()
		state := engine.State()
		records <- flightsim.TelemetryRecord{DT: time.Now(), State: state, Tm: tm}

		switch *scenario {
		case "abort":
			if !state.AbortFlag && state.MissionTime >= *abortTime {
				engine.Abort()
			}
		case "landing":
			if !landingStarted && state.Phase == flightsim.PhaseMECO {
				// Return the booster once the first stage is done.
				landingStarted = true
				engine.InitiateLanding()
			}
		}

		for _, anomaly := range engine.CheckAnomalies() {
			logger.Log("level", "warning", "anomaly", anomaly.Parameter, "severity", anomaly.Severity, "value", anomaly.Value, "limit", anomaly.Limit)
		}

		if state.MissionTime-lastLog >= 10 {
			lastLog = state.MissionTime
			engine.LogStatus()
		}
		if state.Phase.Terminal() {
			engine.LogStatus()
			break
		}
	}
	close(records)
	wg.Wait() // Don't return until the export file is complete.
}
