package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		hours    int
		wantSpec string
	}{
		{1, "0 * * * *"},
		{2, "0 */2 * * *"},
		{3, "0 */3 * * *"},
		{4, "0 */4 * * *"},
		// 5 has no native every-N-hours primitive, so it's spelled out
		{5, "0 */5 * * *"},
		{6, "0 */6 * * *"},
		{12, "0 */12 * * *"},
		// once daily at a fixed clock time, not every 24h from start
		{24, "0 12 * * *"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantSpec, Resolve(tt.hours).Spec, "interval %d", tt.hours)
	}
}

func TestResolveDefaultsToHourly(t *testing.T) {
	hourly := Resolve(1)
	for _, hours := range []int{0, 7, 8, 13, 23, 25, -1, 1000} {
		assert.Equal(t, hourly, Resolve(hours), "interval %d should fall back to hourly", hours)
	}
}

func TestEveryFiveMinutes(t *testing.T) {
	assert.Equal(t, "*/5 * * * *", EveryFiveMinutes.Spec)
}
