package types

import (
	"strconv"
	"strings"
)

// Report is the aggregated generation summary for a single run: one
// formatted entry per inverter, in the order the portal returned them, plus
// the arithmetic total of every inverter's energy generated today.
type Report struct {
	Entries  []string
	TotalKWH float64
}

// Text renders the report as the Telegram message body, Markdown emphasis
// markers included.
func (r Report) Text() string {
	var b strings.Builder
	for _, e := range r.Entries {
		b.WriteString(e)
	}
	b.WriteString("\n🔋*Total:* ")
	b.WriteString(FormatKWH(r.TotalKWH))
	b.WriteString("kWh")
	return b.String()
}

// PlainText is Text with the Markdown emphasis markers stripped, suitable
// for log output.
func (r Report) PlainText() string {
	return strings.ReplaceAll(r.Text(), "*", " ")
}

// FormatKWH renders a kWh value without trailing zeros (12.5 not 12.500000).
func FormatKWH(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
