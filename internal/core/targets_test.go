package core

import "testing"

func TestResolveTargets(t *testing.T) {
	tests := []struct {
		name             string
		grow             *Grow
		settings         *Settings
		wantTempMin      float64
		wantCO2Max       *float64
		wantUsedDefaults bool
	}{
		{
			name:             "nil grow and settings fall back to hardcoded",
			grow:             nil,
			settings:         nil,
			wantTempMin:      68,
			wantCO2Max:       Float(1200),
			wantUsedDefaults: true,
		},
		{
			name: "complete grow targets win over settings",
			grow: &Grow{Targets: Targets{
				TempMin: Float(50), TempMax: Float(60),
				HumidityMin: Float(80), HumidityMax: Float(90),
				CO2Max: Float(900),
			}},
			settings: &Settings{DefaultTargets: &Targets{
				TempMin: Float(68), TempMax: Float(75),
				HumidityMin: Float(85), HumidityMax: Float(95),
				CO2Max: Float(1200),
			}},
			wantTempMin:      50,
			wantCO2Max:       Float(900),
			wantUsedDefaults: false,
		},
		{
			name: "single missing field flips usedDefaults",
			grow: &Grow{Targets: Targets{
				TempMin: Float(50), TempMax: Float(60),
				HumidityMin: Float(80), HumidityMax: Float(90),
			}},
			settings:         nil,
			wantTempMin:      50,
			wantCO2Max:       Float(1200),
			wantUsedDefaults: true,
		},
		{
			name: "settings defaults fill missing fields",
			grow: &Grow{Targets: Targets{TempMin: Float(40)}},
			settings: &Settings{DefaultTargets: &Targets{
				TempMin: Float(68), TempMax: Float(75),
				HumidityMin: Float(85), HumidityMax: Float(95),
				CO2Max: Float(800),
			}},
			wantTempMin:      40,
			wantCO2Max:       Float(800),
			wantUsedDefaults: true,
		},
		{
			name:             "nil co2 in settings defaults stays nil",
			grow:             &Grow{},
			settings:         &Settings{DefaultTargets: &Targets{TempMin: Float(68)}},
			wantTempMin:      68,
			wantCO2Max:       nil,
			wantUsedDefaults: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets, usedDefaults := ResolveTargets(tt.grow, tt.settings)

			if targets.TempMin == nil || *targets.TempMin != tt.wantTempMin {
				t.Errorf("TempMin = %v, want %v", targets.TempMin, tt.wantTempMin)
			}
			if (targets.CO2Max == nil) != (tt.wantCO2Max == nil) {
				t.Fatalf("CO2Max = %v, want %v", targets.CO2Max, tt.wantCO2Max)
			}
			if tt.wantCO2Max != nil && *targets.CO2Max != *tt.wantCO2Max {
				t.Errorf("CO2Max = %v, want %v", *targets.CO2Max, *tt.wantCO2Max)
			}
			if usedDefaults != tt.wantUsedDefaults {
				t.Errorf("usedDefaults = %v, want %v", usedDefaults, tt.wantUsedDefaults)
			}
		})
	}
}

func TestResolveTargetsAlwaysComplete(t *testing.T) {
	targets, _ := ResolveTargets(&Grow{}, &Settings{})

	for name, field := range map[string]*float64{
		"TempMin":     targets.TempMin,
		"TempMax":     targets.TempMax,
		"HumidityMin": targets.HumidityMin,
		"HumidityMax": targets.HumidityMax,
		"CO2Max":      targets.CO2Max,
	} {
		if field == nil {
			t.Errorf("%s = nil, want hardcoded fallback", name)
		}
	}
}
