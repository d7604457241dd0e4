// Package summary turns one pass over the portal into the generation report.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/solarbrief/solarbrief/pkg/log"
	"github.com/solarbrief/solarbrief/pkg/portal"
	"github.com/solarbrief/solarbrief/pkg/types"
)

// Build enumerates every plant and its inverters through an already
// logged-in session and produces the summary report. Any failure aborts the
// whole build: a report is only ever produced from a fully successful pass
// over every plant.
func Build(ctx context.Context, s portal.Session) (types.Report, error) {
	plants, err := s.ListPlants(ctx)
	if err != nil {
		return types.Report{}, err
	}

	var report types.Report
	// device numbering is 1-based and runs across plants, it does not reset
	index := 1
	for _, plant := range plants {
		devices, err := s.ListDevices(ctx, plant, 1)
		if err != nil {
			// one bad plant abandons the run; a partial summary is worse
			// than none
			return types.Report{}, err
		}

		for _, device := range devices {
			report.Entries = append(report.Entries, formatDevice(index, plant, device))
			report.TotalKWH += parseKWH(ctx, device)
			index++
		}
	}

	log.Ctx(ctx).DebugContext(ctx, "summary built",
		slog.Int("plants", len(plants)),
		slog.Int("devices", index-1),
		slog.Float64("totalKWH", report.TotalKWH),
	)
	return report, nil
}

func formatDevice(index int, plant types.Plant, device types.Device) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚡*Inversor %d (%s)*:\n", index, device.Alias)
	if plant.Name != "" {
		fmt.Fprintf(&b, "Planta: %s\n", plant.Name)
	}
	fmt.Fprintf(&b, "Energia gerada: %skWh\n", device.EnergyTodayKWH)
	fmt.Fprintf(&b, "Potência atual: %sW\n", device.CurrentPowerW)
	fmt.Fprintf(&b, "Status: %s\n\n", types.StatusLabel(device.StatusCode))
	return b.String()
}

// parseKWH reads the device's energy-today figure. The portal occasionally
// reports junk here; junk counts as zero rather than sinking the run.
func parseKWH(ctx context.Context, device types.Device) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(device.EnergyTodayKWH), 64)
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "non-numeric eToday, counting as 0",
			slog.String("alias", device.Alias),
			slog.String("eToday", device.EnergyTodayKWH),
		)
		return 0
	}
	return v
}
