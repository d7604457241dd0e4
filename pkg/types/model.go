package types

// Plant is one physical site grouping one or more inverters, as modeled by
// the monitoring portal. Plants are fetched fresh on every run and never
// persisted.
type Plant struct {
	ID string `json:"id"`
	// Name may be empty; the portal doesn't always fill it in.
	Name string `json:"plantName"`
}

// Device is a single inverter belonging to one plant for the duration of a
// run. The portal reports every numeric field as a string; the raw text is
// kept so the report echoes exactly what the portal said.
type Device struct {
	Alias          string `json:"alias"`
	EnergyTodayKWH string `json:"eToday"`
	CurrentPowerW  string `json:"pac"`
	StatusCode     string `json:"status"`
}
