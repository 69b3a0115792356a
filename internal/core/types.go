package core

import "time"

// Phase is a grow's lifecycle stage.
type Phase string

const (
	PhaseIncubation  Phase = "Incubation"
	PhasePinning     Phase = "Pinning"
	PhaseFruiting    Phase = "Fruiting"
	PhasePostHarvest Phase = "Post-harvest"
)

// Status marks whether a grow is still being worked.
type Status string

const (
	StatusActive   Status = "active"
	StatusComplete Status = "complete"
)

// EventType classifies a discrete care or incident event.
type EventType string

const (
	EventMist    EventType = "mist"
	EventFan     EventType = "fan"
	EventFanning EventType = "fanning"
	EventAdjust  EventType = "adjust"
	EventMove    EventType = "move"
	EventSoak    EventType = "soak"
	EventFork    EventType = "fork"
	EventContam  EventType = "contam"
	EventOther   EventType = "other"
)

// Severity grades an event.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityCritical Severity = "critical"
)

// Quality grades a harvest flush.
type Quality string

const (
	QualityA Quality = "A"
	QualityB Quality = "B"
	QualityC Quality = "C"
)

// Targets holds environmental target ranges for a grow. Each field is
// independently nullable; nil means "not set, fall back to defaults".
// Temperatures are Fahrenheit; conversion belongs to presentation only.
type Targets struct {
	TempMin     *float64 `json:"tempMin"`
	TempMax     *float64 `json:"tempMax"`
	HumidityMin *float64 `json:"humidityMin"`
	HumidityMax *float64 `json:"humidityMax"`
	CO2Max      *float64 `json:"co2Max"`
}

// Grow is one batch of a species grown via some method.
type Grow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Method    string    `json:"method"`
	Substrate string    `json:"substrate"`
	StartDate time.Time `json:"startDate"`
	Phase     Phase     `json:"phase"`
	Status    Status    `json:"status"`
	Targets   Targets   `json:"targets"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Log is one time-stamped environmental reading for a grow. Logs are
// immutable once created; there is no update path.
type Log struct {
	ID               string    `json:"id"`
	GrowID           string    `json:"growId"`
	Timestamp        time.Time `json:"timestamp"`
	Temp             *float64  `json:"temp"`
	Humidity         *float64  `json:"humidity"`
	CO2              *float64  `json:"co2"`
	FAE              string    `json:"fae"`
	LightHours       *float64  `json:"lightHours"`
	SurfaceCondition string    `json:"surfaceCondition"`
	Block            string    `json:"block"`
	Treatment        string    `json:"treatment"`
	GrowthMmPerDay   *float64  `json:"growthMmPerDay"`
	FlushHeightMm    *float64  `json:"flushHeightMm"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Event is a discrete occurrence attached to a grow.
type Event struct {
	ID        string    `json:"id"`
	GrowID    string    `json:"growId"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Severity  Severity  `json:"severity"`
	Notes     string    `json:"notes"`
}

// Harvest records one flush taken from a grow.
type Harvest struct {
	ID          string    `json:"id"`
	GrowID      string    `json:"growId"`
	Date        time.Time `json:"date"`
	FlushNumber int       `json:"flushNumber"`
	Weight      *float64  `json:"weight"`
	Quality     Quality   `json:"quality"`
	Notes       string    `json:"notes"`
}

// HealthWeights maps each penalty category to its point weight on the
// 100-point scale.
type HealthWeights struct {
	Recency float64 `json:"recency"`
	Range   float64 `json:"range"`
	CO2     float64 `json:"co2"`
	Contam  float64 `json:"contam"`
}

// Settings is the single process-wide configuration record.
type Settings struct {
	Units          string             `json:"units"`
	RecencyDays    float64            `json:"recencyDays"`
	DefaultTargets *Targets           `json:"defaultTargets"`
	Presets        map[string]Targets `json:"presets"`
	SpeciesList    []string           `json:"speciesList"`
	HealthWeights  *HealthWeights     `json:"healthWeights"`
}

// State is the full in-memory application state: every collection plus
// settings. It is what imports produce and what the store replaces
// wholesale.
type State struct {
	Grows    []Grow    `json:"grows"`
	Logs     []Log     `json:"logs"`
	Events   []Event   `json:"events"`
	Harvests []Harvest `json:"harvests"`
	Settings Settings  `json:"settings"`
}

// Float returns a pointer to v. Convenience for building nullable
// numeric fields in literals and tests.
func Float(v float64) *float64 { return &v }
