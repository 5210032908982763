// Package roster loads team rosters and league reference tables for the
// chain engine in package sim.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/lineup-sim/sim"
)

// Team is a named set of nine batters.
type Team struct {
	Name    string
	Batters sim.Lineup // in roster order
}

// NewTeam validates the batters and returns a Team.
func NewTeam(name string, batters []sim.Profile) (*Team, error) {
	t := &Team{Name: name, Batters: sim.Lineup(slices.Clone(batters))}
	if err := t.Batters.Validate(); err != nil {
		return nil, fmt.Errorf("team %s: %w", name, err)
	}
	return t, nil
}

// Ranked returns the batters sorted by OPS, lowest first. Equal OPS keeps
// roster order.
func (t *Team) Ranked() sim.Lineup {
	ranked := slices.Clone(t.Batters)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].OPS < ranked[j].OPS })
	return ranked
}

// Average returns the team's average batter.
func (t *Team) Average() sim.Rates {
	return sim.AverageRates(t.Batters)
}

// Replace returns a copy of the team with the batter whose ID is id swapped
// for p.
func (t *Team) Replace(id string, p sim.Profile) (*Team, error) {
	i := slices.IndexFunc(t.Batters, func(b sim.Profile) bool { return b.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("team %s: no batter with id %q", t.Name, id)
	}
	batters := slices.Clone(t.Batters)
	batters[i] = p
	return NewTeam(t.Name, batters)
}

// Roster CSV columns. BB, IBB and HBP are folded into walks; plate
// appearances are AB plus walks.
const (
	colID   = "playerid"
	colName = "Name"
	col1B   = "1B"
	col2B   = "2B"
	col3B   = "3B"
	colHR   = "HR"
	colBB   = "BB"
	colIBB  = "IBB"
	colHBP  = "HBP"
	colAB   = "AB"
	colOPS  = "OPS"
)

var requiredColumns = []string{colID, colName, col1B, col2B, col3B, colHR, colBB, colIBB, colHBP, colAB, colOPS}

// LoadTeam reads a roster CSV. The team is named after the file, without
// its extension.
func LoadTeam(path string) (*Team, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer file.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseTeam(name, file)
}

// ParseTeam reads a roster CSV with a header row. Columns may come in any
// order; unknown columns are ignored.
func ParseTeam(name string, r io.Reader) (*Team, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading roster header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		// Spreadsheet exports often start with a byte order mark.
		index[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("roster %s: missing column %q", name, col)
		}
	}

	var batters []sim.Profile
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster %s: reading row %d: %w", name, row, err)
		}
		p, err := parseBatter(record, index)
		if err != nil {
			return nil, fmt.Errorf("roster %s: row %d: %w", name, row, err)
		}
		batters = append(batters, p)
	}
	logrus.Debugf("loaded %d batters for %s", len(batters), name)
	return NewTeam(name, batters)
}

func parseBatter(record []string, index map[string]int) (sim.Profile, error) {
	field := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}
	counts := make(map[string]int, 8)
	for _, col := range []string{col1B, col2B, col3B, colHR, colBB, colIBB, colHBP, colAB} {
		n, err := strconv.Atoi(field(col))
		if err != nil {
			return sim.Profile{}, fmt.Errorf("invalid %s %q: %w", col, field(col), err)
		}
		counts[col] = n
	}
	ops, err := strconv.ParseFloat(field(colOPS), 64)
	if err != nil {
		return sim.Profile{}, fmt.Errorf("invalid %s %q: %w", colOPS, field(colOPS), err)
	}
	walks := counts[colBB] + counts[colIBB] + counts[colHBP]
	return sim.NewProfile(field(colID), field(colName), counts[colAB]+walks,
		counts[col1B], counts[col2B], counts[col3B], counts[colHR], walks, ops)
}
