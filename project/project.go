// Package project persists mixer projects as versioned JSON files in a
// project directory, migrating older file versions on load.
package project

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the file format version written by Save
const CurrentVersion = 2

// Project is one mixer setup: named track references with fader state
type Project struct {
	Version int        `json:"version"`
	Name    string     `json:"name"`
	Tracks  []TrackRef `json:"tracks"`
}

// TrackRef points at a WAV file with its persisted mixer settings
type TrackRef struct {
	Path  string  `json:"path"`
	Gain  float64 `json:"gain"`
	Pan   float64 `json:"pan"`
	Muted bool    `json:"muted"`
}

// version 1 stored the fader as integer percent and had no pan
type trackRefV1 struct {
	Path   string `json:"path"`
	Volume int    `json:"volume"`
	Muted  bool   `json:"muted"`
}

type projectV1 struct {
	Name   string       `json:"name"`
	Tracks []trackRefV1 `json:"tracks"`
}

// decode parses project bytes, migrating old versions to CurrentVersion
// Files without a version field are treated as version 1. Versions newer
// than CurrentVersion are rejected rather than guessed at.
func decode(data []byte) (Project, error) {
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Project{}, fmt.Errorf("parse project: %w", err)
	}

	switch probe.Version {
	case 0, 1:
		var old projectV1
		if err := json.Unmarshal(data, &old); err != nil {
			return Project{}, fmt.Errorf("parse v1 project: %w", err)
		}
		return migrateV1(old), nil
	case CurrentVersion:
		var p Project
		if err := json.Unmarshal(data, &p); err != nil {
			return Project{}, fmt.Errorf("parse project: %w", err)
		}
		return p, nil
	default:
		return Project{}, fmt.Errorf("project version %d is newer than supported version %d", probe.Version, CurrentVersion)
	}
}

// migrateV1 upgrades a version 1 project: percent volume becomes linear
// gain, pan defaults to center
func migrateV1(old projectV1) Project {
	p := Project{
		Version: CurrentVersion,
		Name:    old.Name,
		Tracks:  make([]TrackRef, len(old.Tracks)),
	}
	for i, t := range old.Tracks {
		p.Tracks[i] = TrackRef{
			Path:  t.Path,
			Gain:  float64(t.Volume) / 100,
			Muted: t.Muted,
		}
	}
	return p
}
