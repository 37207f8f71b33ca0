// SPDX-License-Identifier: Unlicense OR MIT

// Package profile provides named display metrics for emulating devices
// on hosts that lack a real display, such as desktops and tests.
//
// Profiles are described in YAML as a list of
//
//	- name: nexus-5
//	  width: 1080
//	  height: 1920
//	  density: 3
//	  dpi: 480
package profile

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"perzo.com/toolbox/screen"
)

// Profile is a named set of display metrics.
type Profile struct {
	Name    string
	Metrics screen.Metrics
}

type entry struct {
	Name    string  `yaml:"name"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float32 `yaml:"density"`
	DPI     int     `yaml:"dpi"`
}

//go:embed profiles.yaml
var builtinYAML []byte

var builtin []Profile

func init() {
	p, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Errorf("profile: builtin profiles: %w", err))
	}
	builtin = p
}

// Builtin returns the profiles of common devices.
func Builtin() []Profile {
	return slices.Clone(builtin)
}

// Load reads profiles from a YAML file.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML list of profiles. Every profile must have a
// unique name and valid metrics.
func Parse(data []byte) ([]Profile, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("profile #%d: missing name", i)
		}
		if _, dup := Lookup(profiles, e.Name); dup {
			return nil, fmt.Errorf("profile %q: duplicate name", e.Name)
		}
		m := screen.Metrics{
			WidthPx:    e.Width,
			HeightPx:   e.Height,
			Density:    e.Density,
			DensityDPI: e.DPI,
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", e.Name, err)
		}
		profiles = append(profiles, Profile{Name: e.Name, Metrics: m})
	}
	return profiles, nil
}

// Lookup returns the profile with the given name.
func Lookup(profiles []Profile, name string) (Profile, bool) {
	i := slices.IndexFunc(profiles, func(p Profile) bool {
		return p.Name == name
	})
	if i == -1 {
		return Profile{}, false
	}
	return profiles[i], true
}

// Rotate returns p as reported with its display turned a quarter.
func (p Profile) Rotate() Profile {
	p.Metrics.WidthPx, p.Metrics.HeightPx = p.Metrics.HeightPx, p.Metrics.WidthPx
	return p
}
