package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/vlr-matches/internal/handler"
	"github.com/pfrederiksen/vlr-matches/internal/logger"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run on the VLR_SCHEDULE cron schedule until interrupted",
		Long: `Runs the same invocation as "run" on a cron schedule. The default
schedule is "0 15 * * *" in UTC (8AM Pacific daylight time). A run that is still
in progress when the next one is due causes that next run to be skipped.`,
		Args: cobra.NoArgs,
		RunE: runSchedule,
	}

	cmd.Flags().BoolVar(&flagRunNow, "run-now", false, "Also run once immediately on start")

	return cmd
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := setup(!flagDryRun)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	h, err := newHandler(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	job := scheduledJob(ctx, h)

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger{}),
		cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})),
	)
	entryID, err := c.AddJob(cfg.Schedule, job)
	if err != nil {
		return fmt.Errorf("scheduling %q: %w", cfg.Schedule, err)
	}

	c.Start()
	logger.Info("Scheduler started", logger.Fields{
		"schedule": cfg.Schedule,
		"timezone": loc.String(),
		"next_run": c.Entry(entryID).Schedule.Next(time.Now().In(loc)).Format(time.RFC3339),
	})

	if flagRunNow {
		c.Entry(entryID).WrappedJob.Run()
	}

	<-ctx.Done()
	logger.Info("Scheduler stopping, waiting for in-flight run", nil)
	<-c.Stop().Done()
	logger.Info("Scheduler stopped", logger.Fields{
		"metrics": logger.GetMetricsSnapshot(),
	})

	return nil
}

// scheduledJob runs one invocation and logs its outcome. Failures are logged,
// not returned, so the next scheduled run still happens.
func scheduledJob(ctx context.Context, h *handler.Handler) cron.Job {
	return cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		resp, err := h.Run(ctx)
		if err != nil {
			logger.Error("Scheduled run failed", nil, err)
			return
		}
		logger.Info("Scheduled run finished", logger.Fields{
			"status_code": resp.StatusCode,
			"body":        resp.Body,
		})
	})
}

// cronLogger sends robfig/cron's internal logging through logger
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, kvFields(keysAndValues))
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, kvFields(keysAndValues), err)
}

func kvFields(keysAndValues []interface{}) logger.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}
	fields := make(logger.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = fmt.Sprint(keysAndValues[i+1])
	}
	return fields
}
