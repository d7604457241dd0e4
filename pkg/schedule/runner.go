package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/solarbrief/solarbrief/pkg/log"
)

// Runner drives the registered jobs on their cadences, gated by the
// daylight window. Each entry runs serially with respect to itself: a firing
// that comes due while the previous run of the same job is still going waits
// its turn rather than overlapping. Cross-process exclusion is not this
// package's problem.
type Runner struct {
	window  Window
	entries []entry

	summaryCadence Cadence
}

type entry struct {
	name    string
	cadence Cadence
	fn      func(context.Context)
}

// NewRunner returns a Runner gating job bodies to the given window.
func NewRunner(w Window) *Runner {
	return &Runner{window: w}
}

// SummaryCadence is the cadence resolved from the configured interval.
// Valid after flag configuration.
func (r *Runner) SummaryCadence() Cadence {
	return r.summaryCadence
}

// Window is the configured daylight window.
func (r *Runner) Window() Window {
	return r.window
}

// Add registers a job on a cadence. Must be called before Run.
func (r *Runner) Add(name string, c Cadence, fn func(context.Context)) {
	r.entries = append(r.entries, entry{name: name, cadence: c, fn: fn})
}

// Run blocks driving the schedule until the context ends, then waits for
// any in-flight job to finish.
func (r *Runner) Run(ctx context.Context) error {
	// DelayIfStillRunning keeps each job serial with respect to itself
	cr := cron.New(cron.WithChain(cron.DelayIfStillRunning(cron.DiscardLogger)))
	for _, e := range r.entries {
		jobCtx := log.Job(ctx, e.name)
		fn := e.fn
		name := e.name
		if _, err := cr.AddFunc(e.cadence.Spec, func() {
			if !r.window.Contains(time.Now()) {
				log.Ctx(jobCtx).DebugContext(jobCtx, "outside daylight window, skipping run",
					slog.String("window", r.window.Start.String()+"-"+r.window.End.String()),
				)
				return
			}
			fn(jobCtx)
		}); err != nil {
			return fmt.Errorf("failed to schedule %s (%s): %w", name, e.cadence.Spec, err)
		}
		log.Ctx(ctx).InfoContext(ctx, "job scheduled",
			slog.String("job", name),
			slog.String("cadence", e.cadence.Name),
			slog.String("spec", e.cadence.Spec),
		)
	}

	cr.Start()
	<-ctx.Done()
	stop := cr.Stop()
	<-stop.Done()
	return nil
}
