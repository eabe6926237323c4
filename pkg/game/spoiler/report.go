// Package spoiler renders a finished seed for humans: a full report on disk
// and a short coloured summary on the console.
package spoiler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ravio/pkg/game/generate"
	"ravio/pkg/game/hints"
	"ravio/pkg/game/settings"
)

// Format is the on-disk encoding of a report.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json" or "yaml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown spoiler format %q", s)
}

type Placement struct {
	Check string `json:"check" yaml:"check"`
	Item  string `json:"item" yaml:"item"`
}

type Sphere struct {
	Index int         `json:"sphere" yaml:"sphere"`
	Items []Placement `json:"items" yaml:"items"`
}

type PathHint struct {
	Boss  string `json:"boss" yaml:"boss"`
	Check string `json:"check" yaml:"check"`
	Item  string `json:"item" yaml:"item"`
}

type Hints struct {
	Path       []PathHint  `json:"path" yaml:"path"`
	Always     []Placement `json:"always" yaml:"always"`
	Sometimes  []Placement `json:"sometimes" yaml:"sometimes"`
	BowOfLight string      `json:"bow_of_light,omitempty" yaml:"bow_of_light,omitempty"`
}

type Region struct {
	Location string      `json:"location" yaml:"location"`
	Checks   []Placement `json:"checks" yaml:"checks"`
}

// Report is everything a player needs to reproduce or audit a seed.
type Report struct {
	Version     string             `json:"version" yaml:"version"`
	Seed        uint32             `json:"seed" yaml:"seed"`
	Hash        string             `json:"hash" yaml:"hash"`
	RunID       string             `json:"run_id" yaml:"run_id"`
	Attempts    int                `json:"attempts" yaml:"attempts"`
	Settings    *settings.Settings `json:"settings" yaml:"settings"`
	Trials      []string           `json:"trials" yaml:"trials"`
	Playthrough []Sphere           `json:"playthrough" yaml:"playthrough"`
	Hints       Hints              `json:"hints" yaml:"hints"`
	Layout      []Region           `json:"layout" yaml:"layout"`
}

// New builds the report for seed. Quest checks are left out of the layout
// since they never change; they still show up in the playthrough.
func New(seed *generate.Seed) *Report {
	r := &Report{
		Version:  generate.Version,
		Seed:     seed.Seed,
		Hash:     seed.Hash,
		RunID:    seed.RunID.String(),
		Attempts: seed.Attempts,
		Settings: seed.Settings,
		Trials:   []string{},
	}
	for _, t := range seed.Trials.Trials() {
		r.Trials = append(r.Trials, t.String())
	}

	for i, sphere := range seed.Playthrough {
		s := Sphere{Index: i}
		for _, p := range sphere {
			s.Items = append(s.Items, Placement{Check: p.Check.DisplayName(), Item: p.Item.String()})
		}
		r.Playthrough = append(r.Playthrough, s)
	}

	r.Hints = Hints{Path: []PathHint{}, Always: placements(seed.Hints.Always), Sometimes: placements(seed.Hints.Sometimes)}
	for _, h := range seed.Hints.Path {
		r.Hints.Path = append(r.Hints.Path, PathHint{Boss: h.Dungeon.String(), Check: h.Check.DisplayName(), Item: h.Item.String()})
	}
	if c := seed.Hints.BowOfLight; c != nil {
		r.Hints.BowOfLight = c.DisplayName()
	}

	for _, loc := range seed.World().Locations() {
		reg := Region{Location: string(loc.ID)}
		for _, c := range loc.Checks {
			if c.IsQuest() {
				continue
			}
			reg.Checks = append(reg.Checks, Placement{Check: c.Name, Item: seed.Plan.Get(c).String()})
		}
		if len(reg.Checks) > 0 {
			r.Layout = append(r.Layout, reg)
		}
	}
	return r
}

func placements(ls []hints.Location) []Placement {
	out := make([]Placement, 0, len(ls))
	for _, l := range ls {
		out = append(out, Placement{Check: l.Check.DisplayName(), Item: l.Item.String()})
	}
	return out
}

func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// FileName is the spoiler file name for seed in format f.
func FileName(seed uint32, f Format) string {
	return fmt.Sprintf("%010d_spoiler.%s", seed, f)
}

// Write saves the report under dir and returns the file's path.
func (r *Report) Write(dir string, f Format) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(r.Seed, f))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	switch f {
	case YAML:
		err = r.WriteYAML(file)
	default:
		err = r.WriteJSON(file)
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, file.Close()
}
