package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/metrics"

	"github.com/robfig/cron/v3"
)

// ProjectionAuditJob periodically sweeps all orders and verifies each
// projected latest status against its event ledger. Violations are repaired
// by the handler; the job's duty is to surface them in logs and metrics,
// because a correct write path never produces one.
type ProjectionAuditJob struct {
	handler commands.AuditProjectionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewProjectionAuditJob creates a new job for auditing projections.
// Uses AuditProjectionsCommandHandler to run the sweep once a minute.
func NewProjectionAuditJob(handler commands.AuditProjectionsCommandHandler, logger *slog.Logger) *ProjectionAuditJob {
	return &ProjectionAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "projection_audit_job"),
	}
}

// Start begins the projection audit job to run every minute.
func (j *ProjectionAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAuditProjectionsCommand()

		started := time.Now()
		result, err := j.handler.Handle(ctx, cmd)
		metrics.ProjectionAuditDuration.Observe(time.Since(started).Seconds())

		if err != nil {
			j.logger.ErrorContext(ctx, "Projection audit sweep failed", "error", err)
			return
		}

		for _, violation := range result.Violations {
			metrics.ProjectionViolationsTotal.Inc()
			j.logger.ErrorContext(ctx, "Projection violation found and repaired", "violation", violation)
		}

		j.logger.InfoContext(ctx, "Projection audit sweep finished",
			"checked", result.Checked,
			"violations", len(result.Violations),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Projection audit job started (running every minute)")
	return nil
}

// Stop stops the projection audit job.
func (j *ProjectionAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Projection audit job stopped")
}
