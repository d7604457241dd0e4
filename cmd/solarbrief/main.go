package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/solarbrief/solarbrief/pkg/hub"
	"github.com/solarbrief/solarbrief/pkg/job"
	"github.com/solarbrief/solarbrief/pkg/log"
	"github.com/solarbrief/solarbrief/pkg/schedule"

	"github.com/joho/godotenv"
	"github.com/levenlabs/go-lflag"
	"github.com/levenlabs/go-llog"
)

func main() {
	// flags may come from a local .env; missing file is fine
	_ = godotenv.Load()

	// init packages
	summaryJob := job.Configured()
	hubClient := hub.Configured()
	sched := schedule.Configured()

	// parse flags
	lflag.Configure()

	var level slog.Level
	// lflag automatically sets llog's level, but we need to set the slog level
	switch llog.GetLevel() {
	case llog.DebugLevel:
		level = slog.LevelDebug
	case llog.InfoLevel:
		level = slog.LevelInfo
	case llog.WarnLevel:
		level = slog.LevelWarn
	case llog.ErrorLevel:
		level = slog.LevelError
	default:
		panic(fmt.Errorf("unknown log level: %s", llog.GetLevel().String()))
	}
	log.SetDefaultLogLevel(level)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	slog.Debug("logger configured", slog.String("level", level.String()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sched.Add("summary", sched.SummaryCadence(), func(ctx context.Context) {
		// the job logs its own failures; a failed run only surfaces there
		// since the next firing starts fresh anyway
		_ = summaryJob.Run(ctx)
	})
	sched.Add("sensor-sync", schedule.EveryFiveMinutes, hubClient.EnsureSensor)

	if err := sched.Run(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "scheduler failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "scheduler exited cleanly")
}
