package core

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Fallbacks when settings carry no health configuration.
var defaultHealthWeights = HealthWeights{
	Recency: 20,
	Range:   40,
	CO2:     15,
	Contam:  25,
}

const defaultRecencyDays = 3

// ScoreInput bundles everything the scorer reads. Logs and Events are
// the global collections; the scorer filters by the grow's ID itself,
// so callers must not pre-filter.
type ScoreInput struct {
	Grow     *Grow
	Logs     []Log
	Events   []Event
	Settings *Settings

	// Now is the evaluation instant for recency penalties. The zero
	// value means time.Now(); tests inject a fixed instant.
	Now time.Time
}

// ScoreResult is a computed health signal: an integer score in [0,100]
// and the ordered list of penalty explanations that produced it.
type ScoreResult struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// HealthScore computes the rule-based health score for one grow.
//
// Penalties are additive against a starting score of 100: staleness of
// the latest log (pro-rated per day past the recency threshold),
// out-of-range temperature/humidity on the latest log only, CO2 above
// target on the latest log, and any contamination event ever logged for
// the grow. The result is clamped to [0,100] and rounded.
//
// There is no error path: absent logs, absent events, nil settings and
// nil target bounds all degrade through fallbacks.
func HealthScore(in ScoreInput) ScoreResult {
	weights := defaultHealthWeights
	if in.Settings != nil && in.Settings.HealthWeights != nil {
		weights = *in.Settings.HealthWeights
	}
	recencyDays := float64(defaultRecencyDays)
	if in.Settings != nil && in.Settings.RecencyDays > 0 {
		recencyDays = in.Settings.RecencyDays
	}

	score := 100.0
	var reasons []string

	targets, usedDefaults := ResolveTargets(in.Grow, in.Settings)
	if usedDefaults {
		reasons = append(reasons, "Targets incomplete; using safe defaults for scoring.")
	}

	var growID string
	if in.Grow != nil {
		growID = in.Grow.ID
	}

	latest := LatestLog(in.Logs, growID)
	if latest == nil {
		score -= weights.Recency
		reasons = append(reasons, "No logs yet; recency penalty applied.")
	} else {
		now := in.Now
		if now.IsZero() {
			now = time.Now()
		}
		since := daysSince(latest.Timestamp, now)
		if float64(since) > recencyDays {
			perDay := weights.Recency / recencyDays
			penalty := math.Min(weights.Recency, (float64(since)-recencyDays)*perDay)
			score -= penalty
			reasons = append(reasons, fmt.Sprintf("Last log %dd ago; recency penalty applied.", since))
		}

		var outOfRange []string
		if latest.Temp != nil && outsideRange(*latest.Temp, targets.TempMin, targets.TempMax) {
			outOfRange = append(outOfRange, "temperature")
		}
		if latest.Humidity != nil && outsideRange(*latest.Humidity, targets.HumidityMin, targets.HumidityMax) {
			outOfRange = append(outOfRange, "humidity")
		}
		if len(outOfRange) > 0 {
			score -= (weights.Range / 2) * float64(len(outOfRange))
			reasons = append(reasons, "Out of range: "+strings.Join(outOfRange, ", ")+".")
		}

		if latest.CO2 != nil && targets.CO2Max != nil && *latest.CO2 > *targets.CO2Max {
			score -= weights.CO2
			reasons = append(reasons, "CO2 above target range.")
		}
	}

	// Contamination is checked against the full event history, not
	// just recent events.
	for _, event := range in.Events {
		if event.GrowID == growID && event.Type == EventContam {
			score -= weights.Contam
			reasons = append(reasons, "Contamination event logged.")
			break
		}
	}

	rounded := int(math.Max(0, math.Min(100, math.Round(score))))
	if len(reasons) == 0 {
		reasons = append(reasons, "All signals within target ranges.")
	}

	return ScoreResult{Score: rounded, Reasons: reasons}
}

// daysSince floors the elapsed whole days between then and now.
// Negative for future timestamps, which simply never trips the
// recency threshold.
func daysSince(then, now time.Time) int {
	return int(math.Floor(now.Sub(then).Hours() / 24))
}

// outsideRange reports whether v violates either bound. A nil bound
// never flags.
func outsideRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return true
	}
	if max != nil && v > *max {
		return true
	}
	return false
}
