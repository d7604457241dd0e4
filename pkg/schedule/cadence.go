// Package schedule decides when the jobs fire and drives them.
package schedule

// Cadence is a named repetition schedule expressed as a standard five-field
// cron spec. Cadences are derived purely from configuration; resolving one
// never consults the clock.
type Cadence struct {
	Name string
	Spec string
}

// EveryFiveMinutes is the generation-check job's fixed cadence.
var EveryFiveMinutes = Cadence{Name: "every-5-minutes", Spec: "*/5 * * * *"}

// cadences maps the hours-between-summaries setting to its schedule. 24 is
// deliberately a fixed clock time, not "every 24 hours" relative to start.
// Adding a cadence is one line here.
var cadences = map[int]Cadence{
	1:  {Name: "hourly", Spec: "0 * * * *"},
	2:  {Name: "every-2-hours", Spec: "0 */2 * * *"},
	3:  {Name: "every-3-hours", Spec: "0 */3 * * *"},
	4:  {Name: "every-4-hours", Spec: "0 */4 * * *"},
	5:  {Name: "every-5-hours", Spec: "0 */5 * * *"},
	6:  {Name: "every-6-hours", Spec: "0 */6 * * *"},
	12: {Name: "every-12-hours", Spec: "0 */12 * * *"},
	24: {Name: "daily-at-noon", Spec: "0 12 * * *"},
}

// Resolve maps the configured interval to its cadence. Unrecognized values
// fall back to hourly.
func Resolve(intervalHours int) Cadence {
	if c, ok := cadences[intervalHours]; ok {
		return c
	}
	return cadences[1]
}
