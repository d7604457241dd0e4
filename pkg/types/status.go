package types

// StatusUnknown is returned for any status code the portal never documented.
const StatusUnknown = "Desconhecido"

var statusLabels = map[string]string{
	"1":  "Normal",
	"-1": "Desconectado",
	"3":  "Falha",
	"4":  "Desligado",
}

// StatusLabel maps a portal device status code to its human label. The
// lookup is total: unmapped codes (including the empty string) degrade to
// StatusUnknown instead of failing.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return StatusUnknown
}
