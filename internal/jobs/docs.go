// Package jobs provides scheduled background tasks for the drone delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Together they reproduce the simulation cycle: allocate the pending queue,
// launch the planned flights, then advance the clock.
//
// # Available Jobs
//
// 1. DispatchJob - allocates pending orders to idle drones and launches flights
// 2. SimulationClockJob - advances every flight and recharging drone by a fixed number of minutes
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(&dispatchHandler, &advanceHandler, jobs.Schedules{
//		Dispatch:         "@every 5s",
//		Tick:             "@every 5s",
//		TickDeltaMinutes: 5,
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept five or six field cron specs (the leading seconds field is
// optional) and descriptors such as "@every 5s". A run still in progress when
// its next firing is due causes that firing to be skipped.
//
// # Error Handling
//
// - Dispatch job ignores an empty queue
// - Clock job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
