package roster

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// League is a set of teams with their observed scoring, loaded from YAML.
// It is reference data for reporting; the chain engine never reads it.
type League struct {
	Version string       `yaml:"version"`
	Name    string       `yaml:"name,omitempty"`
	Teams   []LeagueTeam `yaml:"teams"`

	dir string // directory of the league file; rosters resolve against it
}

// LeagueTeam is one league entry.
type LeagueTeam struct {
	Name        string  `yaml:"name"`
	Roster      string  `yaml:"roster"`        // CSV path, relative to the league file
	RunsPerGame float64 `yaml:"runs_per_game"` // observed runs scored per game
}

// LoadLeague reads and validates a league YAML file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadLeague(path string) (*League, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading league config: %w", err)
	}
	var league League
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&league); err != nil {
		return nil, fmt.Errorf("parsing league config: %w", err)
	}
	league.dir = filepath.Dir(path)
	if err := league.Validate(); err != nil {
		return nil, err
	}
	return &league, nil
}

// Validate checks the league entries.
func (l *League) Validate() error {
	if l.Version != "" && l.Version != "1" {
		return fmt.Errorf("unsupported league config version %q", l.Version)
	}
	if len(l.Teams) == 0 {
		return fmt.Errorf("league config lists no teams")
	}
	seen := make(map[string]bool, len(l.Teams))
	for i, t := range l.Teams {
		prefix := fmt.Sprintf("teams[%d]", i)
		if t.Name == "" {
			return fmt.Errorf("%s: name is required", prefix)
		}
		if seen[t.Name] {
			return fmt.Errorf("%s: duplicate team %q", prefix, t.Name)
		}
		seen[t.Name] = true
		if t.Roster == "" {
			return fmt.Errorf("%s (%s): roster is required", prefix, t.Name)
		}
		if math.IsNaN(t.RunsPerGame) || math.IsInf(t.RunsPerGame, 0) || t.RunsPerGame < 0 {
			return fmt.Errorf("%s (%s): runs_per_game must be a finite non-negative number, got %f", prefix, t.Name, t.RunsPerGame)
		}
	}
	return nil
}

// RosterPath resolves a team's roster path against the league file.
func (l *League) RosterPath(t LeagueTeam) string {
	if filepath.IsAbs(t.Roster) || l.dir == "" {
		return t.Roster
	}
	return filepath.Join(l.dir, t.Roster)
}

// LoadTeam loads the roster of a league entry, named after the entry.
func (l *League) LoadTeam(t LeagueTeam) (*Team, error) {
	team, err := LoadTeam(l.RosterPath(t))
	if err != nil {
		return nil, err
	}
	team.Name = t.Name
	return team, nil
}
