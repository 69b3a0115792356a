package core

import (
	"encoding/json"
	"errors"
)

// snapshotVersion is bumped when the serialized state shape changes
// incompatibly. Snapshots from other versions are refused.
const snapshotVersion = 1

type snapshot struct {
	Version int    `json:"version"`
	Data    *State `json:"data"`
}

// ErrBadSnapshot is returned when a backup payload is not a state
// snapshot this version understands.
var ErrBadSnapshot = errors.New("invalid backup format")

// SeedState builds the default application state for a fresh install:
// empty collections plus settings populated with the built-in species
// list, presets, target defaults and health weights.
func SeedState() *State {
	defaults := fallbackTargets
	weights := defaultHealthWeights
	presets := make(map[string]Targets, len(SpeciesPresets))
	for species, targets := range SpeciesPresets {
		presets[species] = targets
	}
	return &State{
		Grows:    []Grow{},
		Logs:     []Log{},
		Events:   []Event{},
		Harvests: []Harvest{},
		Settings: Settings{
			Units:          "F",
			RecencyDays:    defaultRecencyDays,
			DefaultTargets: &defaults,
			Presets:        presets,
			SpeciesList:    append([]string(nil), SpeciesList...),
			HealthWeights:  &weights,
		},
	}
}

// EncodeState serializes full application state as a versioned JSON
// snapshot suitable for backups.
func EncodeState(state *State) ([]byte, error) {
	return json.MarshalIndent(snapshot{Version: snapshotVersion, Data: state}, "", "  ")
}

// DecodeState parses a snapshot produced by EncodeState. Payloads with
// a different version or no data yield ErrBadSnapshot.
func DecodeState(raw []byte) (*State, error) {
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, ErrBadSnapshot
	}
	if snap.Version != snapshotVersion || snap.Data == nil {
		return nil, ErrBadSnapshot
	}
	return snap.Data, nil
}
