package core

// Hardcoded target fallbacks, used when neither the grow nor the
// settings default provides a value.
var fallbackTargets = Targets{
	TempMin:     Float(68),
	TempMax:     Float(75),
	HumidityMin: Float(85),
	HumidityMax: Float(95),
	CO2Max:      Float(1200),
}

// ResolveTargets merges a grow's explicit target ranges with the
// settings-level defaults, falling back to hardcoded safe values when
// settings carry no defaults at all. The second return value reports
// whether any of the five grow-level fields was unset, even one.
//
// Note that a settings default of nil for an individual field resolves
// to nil, not to the hardcoded fallback; only a wholly absent
// DefaultTargets triggers the hardcoded set. A nil resolved bound
// suppresses the corresponding check in the scorer.
//
// This never fails and always returns a structure; grow and settings
// may both be nil.
func ResolveTargets(grow *Grow, settings *Settings) (Targets, bool) {
	defaults := fallbackTargets
	if settings != nil && settings.DefaultTargets != nil {
		defaults = *settings.DefaultTargets
	}

	var own Targets
	if grow != nil {
		own = grow.Targets
	}

	resolved := Targets{
		TempMin:     coalesce(own.TempMin, defaults.TempMin),
		TempMax:     coalesce(own.TempMax, defaults.TempMax),
		HumidityMin: coalesce(own.HumidityMin, defaults.HumidityMin),
		HumidityMax: coalesce(own.HumidityMax, defaults.HumidityMax),
		CO2Max:      coalesce(own.CO2Max, defaults.CO2Max),
	}

	usedDefaults := own.TempMin == nil ||
		own.TempMax == nil ||
		own.HumidityMin == nil ||
		own.HumidityMax == nil ||
		own.CO2Max == nil

	return resolved, usedDefaults
}

func coalesce(v, fallback *float64) *float64 {
	if v != nil {
		return v
	}
	return fallback
}
