package operations

import (
	"context"
	"log/slog"
	"time"

	"dpwhcli/internal/infrastructure"
)

func (c *Controller) logStepStart(ctx context.Context, step Step) {
	c.logger.DebugContext(ctx, "step_start",
		slog.String("step", step.ID()),
		slog.String("name", step.Name()))
}

func (c *Controller) logStepComplete(ctx context.Context, step Step, duration time.Duration) {
	c.logger.InfoContext(ctx, "step_complete",
		slog.String("step", step.ID()),
		slog.Duration("duration", duration))
}

func (c *Controller) logStepError(ctx context.Context, step Step, err error) {
	logger := infrastructure.WithError(c.logger, err)
	if err == nil {
		logger = c.logger.With(slog.String("error", "unknown error"))
	}
	logger.ErrorContext(ctx, "step_error",
		slog.String("step", step.ID()))
}
