package core

import (
	"reflect"
	"testing"
	"time"
)

var scoreNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// completeTargets keeps usedDefaults false so tests control exactly
// which reasons appear.
var completeTargets = Targets{
	TempMin: Float(55), TempMax: Float(75),
	HumidityMin: Float(85), HumidityMax: Float(95),
	CO2Max: Float(1200),
}

func healthyLog(growID string, at time.Time) Log {
	return Log{
		ID:        "log_1",
		GrowID:    growID,
		Timestamp: at,
		Temp:      Float(70),
		Humidity:  Float(90),
		CO2:       Float(800),
	}
}

func TestHealthScore(t *testing.T) {
	grow := &Grow{ID: "grow_a", Targets: completeTargets}

	tests := []struct {
		name        string
		logs        []Log
		events      []Event
		settings    *Settings
		wantScore   int
		wantReasons []string
	}{
		{
			name:        "all signals within range",
			logs:        []Log{healthyLog("grow_a", scoreNow)},
			wantScore:   100,
			wantReasons: []string{"All signals within target ranges."},
		},
		{
			name:        "no logs applies full recency penalty",
			logs:        nil,
			wantScore:   80,
			wantReasons: []string{"No logs yet; recency penalty applied."},
		},
		{
			name:      "stale log applies partial pro-rated penalty",
			logs:      []Log{healthyLog("grow_a", scoreNow.AddDate(0, 0, -5))},
			wantScore: 87, // 100 - min(20, (5-3)*20/3) = 86.67 rounded
			wantReasons: []string{
				"Last log 5d ago; recency penalty applied.",
			},
		},
		{
			name:      "very stale log caps at full recency weight",
			logs:      []Log{healthyLog("grow_a", scoreNow.AddDate(0, 0, -30))},
			wantScore: 80,
			wantReasons: []string{
				"Last log 30d ago; recency penalty applied.",
			},
		},
		{
			name: "temperature out of range",
			logs: []Log{{
				GrowID: "grow_a", Timestamp: scoreNow,
				Temp: Float(90), Humidity: Float(90),
			}},
			wantScore:   80,
			wantReasons: []string{"Out of range: temperature."},
		},
		{
			name: "both dimensions out of range",
			logs: []Log{{
				GrowID: "grow_a", Timestamp: scoreNow,
				Temp: Float(90), Humidity: Float(50),
			}},
			wantScore:   60,
			wantReasons: []string{"Out of range: temperature, humidity."},
		},
		{
			name: "co2 above target",
			logs: []Log{{
				GrowID: "grow_a", Timestamp: scoreNow,
				Temp: Float(70), Humidity: Float(90), CO2: Float(2000),
			}},
			wantScore:   85,
			wantReasons: []string{"CO2 above target range."},
		},
		{
			name:   "contamination event",
			logs:   []Log{healthyLog("grow_a", scoreNow)},
			events: []Event{{GrowID: "grow_a", Type: EventContam}},
			wantScore: 75,
			wantReasons: []string{
				"Contamination event logged.",
			},
		},
		{
			name: "contamination on another grow does not count",
			logs: []Log{healthyLog("grow_a", scoreNow)},
			events: []Event{
				{GrowID: "grow_b", Type: EventContam},
				{GrowID: "grow_a", Type: EventMist},
			},
			wantScore:   100,
			wantReasons: []string{"All signals within target ranges."},
		},
		{
			name: "nil readings never flag",
			logs: []Log{{GrowID: "grow_a", Timestamp: scoreNow}},
			wantScore:   100,
			wantReasons: []string{"All signals within target ranges."},
		},
		{
			name: "custom weights from settings",
			logs: nil,
			settings: &Settings{
				HealthWeights: &HealthWeights{Recency: 50, Range: 40, CO2: 15, Contam: 25},
			},
			wantScore:   50,
			wantReasons: []string{"No logs yet; recency penalty applied."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthScore(ScoreInput{
				Grow:     grow,
				Logs:     tt.logs,
				Events:   tt.events,
				Settings: tt.settings,
				Now:      scoreNow,
			})

			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if !reflect.DeepEqual(got.Reasons, tt.wantReasons) {
				t.Errorf("Reasons = %q, want %q", got.Reasons, tt.wantReasons)
			}
		})
	}
}

func TestHealthScoreIncompleteTargetsReason(t *testing.T) {
	// The defaults-used reason is emitted even when nothing else is
	// wrong, and it sorts first.
	grow := &Grow{ID: "grow_a", Targets: Targets{TempMin: Float(55)}}
	got := HealthScore(ScoreInput{
		Grow: grow,
		Logs: []Log{{GrowID: "grow_a", Timestamp: scoreNow, Temp: Float(70), Humidity: Float(90)}},
		Now:  scoreNow,
	})

	want := []string{"Targets incomplete; using safe defaults for scoring."}
	if got.Score != 100 || !reflect.DeepEqual(got.Reasons, want) {
		t.Errorf("got score %d reasons %q, want 100 %q", got.Score, got.Reasons, want)
	}
}

func TestHealthScoreNilCO2MaxSuppressesPenalty(t *testing.T) {
	// A co2 cap resolved to nil must suppress the CO2 penalty, not act
	// as a cap of zero.
	grow := &Grow{ID: "grow_a"}
	settings := &Settings{DefaultTargets: &Targets{
		TempMin: Float(55), TempMax: Float(75),
		HumidityMin: Float(85), HumidityMax: Float(95),
	}}
	got := HealthScore(ScoreInput{
		Grow: grow,
		Logs: []Log{{
			GrowID: "grow_a", Timestamp: scoreNow,
			Temp: Float(70), Humidity: Float(90), CO2: Float(5000),
		}},
		Settings: settings,
		Now:      scoreNow,
	})

	want := []string{"Targets incomplete; using safe defaults for scoring."}
	if got.Score != 100 || !reflect.DeepEqual(got.Reasons, want) {
		t.Errorf("got score %d reasons %q, want 100 %q", got.Score, got.Reasons, want)
	}
}

func TestHealthScoreContamDelta(t *testing.T) {
	// Adding one contam event reduces the score by exactly the contam
	// weight, regardless of log recency.
	grow := &Grow{ID: "grow_a", Targets: completeTargets}
	logs := []Log{healthyLog("grow_a", scoreNow.AddDate(0, 0, -30))}

	clean := HealthScore(ScoreInput{Grow: grow, Logs: logs, Now: scoreNow})
	dirty := HealthScore(ScoreInput{
		Grow: grow, Logs: logs,
		Events: []Event{{GrowID: "grow_a", Type: EventContam}},
		Now:    scoreNow,
	})

	if clean.Score-dirty.Score != 25 {
		t.Errorf("contam delta = %d, want 25", clean.Score-dirty.Score)
	}
}

func TestHealthScoreClampsToZero(t *testing.T) {
	grow := &Grow{ID: "grow_a", Targets: completeTargets}
	got := HealthScore(ScoreInput{
		Grow: grow,
		Logs: []Log{{
			GrowID: "grow_a", Timestamp: scoreNow.AddDate(0, 0, -60),
			Temp: Float(120), Humidity: Float(10), CO2: Float(9000),
		}},
		Events: []Event{{GrowID: "grow_a", Type: EventContam}},
		Settings: &Settings{
			HealthWeights: &HealthWeights{Recency: 50, Range: 60, CO2: 30, Contam: 40},
		},
		Now: scoreNow,
	})

	if got.Score != 0 {
		t.Errorf("Score = %d, want 0", got.Score)
	}
}

func TestHealthScoreLatestLogOnly(t *testing.T) {
	// Range checks read the latest log only: an out-of-range early log
	// under a healthy latest log scores clean.
	grow := &Grow{ID: "grow_a", Targets: completeTargets}
	logs := []Log{
		{GrowID: "grow_a", Timestamp: scoreNow.AddDate(0, 0, -2), Temp: Float(120)},
		healthyLog("grow_a", scoreNow),
	}

	got := HealthScore(ScoreInput{Grow: grow, Logs: logs, Now: scoreNow})
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
}

func TestHealthScoreBounds(t *testing.T) {
	// Scores stay integers in [0,100] across a spread of inputs.
	grow := &Grow{ID: "grow_a"}
	for days := 0; days < 40; days += 7 {
		got := HealthScore(ScoreInput{
			Grow: grow,
			Logs: []Log{healthyLog("grow_a", scoreNow.AddDate(0, 0, -days))},
			Now:  scoreNow,
		})
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("days=%d: Score = %d out of bounds", days, got.Score)
		}
	}
}
