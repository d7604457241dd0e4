package schedule

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/levenlabs/go-lflag"
	"github.com/solarbrief/solarbrief/pkg/log"
)

// Configured registers the scheduling flags and returns a Runner whose
// window and summary cadence are filled in once flags are parsed.
func Configured() *Runner {
	r := NewRunner(DefaultWindow)

	interval := lflag.String("summary-interval-hours", "1", "hours between generation summaries (1,2,3,4,5,6,12,24; anything else means hourly)")
	windowStart := lflag.String("daylight-window-start", DefaultWindow.Start.String(), "start of the daily window jobs may run in (HH:MM)")
	windowEnd := lflag.String("daylight-window-end", DefaultWindow.End.String(), "end of the daily window jobs may run in (HH:MM)")

	lflag.Do(func() {
		// non-numeric coerces to 0, which Resolve maps to hourly
		hours, _ := strconv.Atoi(strings.TrimSpace(*interval))
		r.summaryCadence = Resolve(hours)

		start, err := ParseClockTime(*windowStart)
		if err != nil {
			log.Ctx(context.Background()).Error("invalid daylight-window-start", slog.Any("error", err))
			os.Exit(1)
		}
		end, err := ParseClockTime(*windowEnd)
		if err != nil {
			log.Ctx(context.Background()).Error("invalid daylight-window-end", slog.Any("error", err))
			os.Exit(1)
		}
		r.window = Window{Start: start, End: end}
	})

	return r
}
