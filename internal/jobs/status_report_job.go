package jobs

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule runs the report at the top of every minute.
const DefaultStatusReportSchedule = "0 * * * * *"

// StatusSummaryHandler is the query the report is built from.
type StatusSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetStatusSummaryQuery) ([]queries.GetStatusSummaryQueryResponse, error)
}

// StatusReportJob periodically logs how many packages sit in each status.
type StatusReportJob struct {
	handler  StatusSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusReportJob creates the report job. schedule is a six-field cron
// expression (seconds first); an empty schedule means DefaultStatusReportSchedule.
func NewStatusReportJob(handler StatusSummaryHandler, schedule string, logger *slog.Logger) *StatusReportJob {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}
	return &StatusReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_report_job"),
	}
}

// Start schedules the report. Returns an error for an invalid schedule.
func (j *StatusReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started", "schedule", j.schedule)
	return nil
}

// Run builds and logs one report.
func (j *StatusReportJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetStatusSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(summary)+2)
	var total int64
	for _, line := range summary {
		attrs = append(attrs, line.Status.String(), line.Count)
		total += line.Count
	}
	attrs = append(attrs, "total", total)

	j.logger.InfoContext(ctx, "Package status report", attrs...)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *StatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}
