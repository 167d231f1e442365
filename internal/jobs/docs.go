// Package jobs provides scheduled background tasks for the tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusReportJob - logs the number of packages in every status, once a minute by default
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(summaryHandler, cfg.StatusReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field,
// e.g. "0 */5 * * * *" for every five minutes.
//
// # Error Handling
//
// A failed report is logged and the next run proceeds normally.
// An invalid schedule makes StartAll fail.
package jobs
