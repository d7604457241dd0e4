// Package job wires the collection pipeline into the runnable summary job.
package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solarbrief/solarbrief/pkg/log"
	"github.com/solarbrief/solarbrief/pkg/portal"
	"github.com/solarbrief/solarbrief/pkg/summary"
	"github.com/solarbrief/solarbrief/pkg/telegram"
	"github.com/solarbrief/solarbrief/pkg/types"
)

// Summary is the scheduled job that collects generation data and sends the
// report to every configured chat.
type Summary struct {
	cfg        types.Config
	newSession func() portal.Session
	notifier   telegram.Notifier
}

// New builds the job from explicit collaborators.
func New(cfg types.Config, newSession func() portal.Session, notifier telegram.Notifier) *Summary {
	return &Summary{cfg: cfg, newSession: newSession, notifier: notifier}
}

// Run executes one full pass: config gate, fresh login, aggregate, dispatch.
// A missing token or empty recipient list is a successful no-op so that a
// deployment without credentials doesn't alarm; every data-collection
// failure aborts before anything is dispatched.
func (j *Summary) Run(ctx context.Context) error {
	if !j.cfg.TelegramConfigured() {
		log.Ctx(ctx).WarnContext(ctx, "telegram bot token not configured, skipping summary")
		return nil
	}
	if !j.cfg.HasRecipients() {
		log.Ctx(ctx).WarnContext(ctx, "no telegram chat ids configured, nobody to send the summary to")
		return nil
	}

	// a fresh session per run; nothing is reused or cached across runs
	s := j.newSession()
	if err := s.Login(ctx, j.cfg.PortalUsername, j.cfg.PortalPassword); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "portal login failed", slog.Any("error", err))
		return err
	}

	report, err := summary.Build(ctx, s)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to build generation summary", slog.Any("error", err))
		return fmt.Errorf("failed to build generation summary: %w", err)
	}

	if err := telegram.Dispatch(ctx, j.notifier, report, j.cfg.ChatIDs); err != nil {
		return err
	}

	log.Ctx(ctx).InfoContext(ctx, "generation summary sent",
		slog.Int("recipients", len(j.cfg.ChatIDs)),
		slog.Int("devices", len(report.Entries)),
		slog.String("report", report.PlainText()),
	)
	return nil
}
