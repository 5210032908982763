package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/lineup-sim/sim"
	"github.com/inference-sim/lineup-sim/sim/internal/testutil"
)

func TestLoadTeam_ValidCSV_LoadsNineBatters(t *testing.T) {
	team, err := LoadTeam(filepath.Join("testdata", "harbor.csv"))
	require.NoError(t, err)

	assert.Equal(t, "harbor", team.Name)
	require.Len(t, team.Batters, sim.LineupSize)

	// "Gabe Baker",458,104,68,15,6,15,35,0,9,0.679,10001
	b := team.Batters[0]
	assert.Equal(t, "10001", b.ID)
	assert.Equal(t, "Gabe Baker", b.Name)
	assert.Equal(t, 458+35+0+9, b.PA, "PA = AB + BB + IBB + HBP")
	assert.Equal(t, 68, b.Singles)
	assert.Equal(t, 15, b.Doubles)
	assert.Equal(t, 6, b.Triples)
	assert.Equal(t, 15, b.HomeRuns)
	assert.Equal(t, 44, b.Walks)
	assert.Equal(t, 458-104, b.Outs(), "outs = AB - H")
	assert.Equal(t, 0.679, b.OPS)
}

func TestParseTeam_ColumnOrderAndBOM(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("\ufeffOPS,playerid,Name,AB,1B,2B,3B,HR,BB,IBB,HBP,SB\n")
	for i := 0; i < sim.LineupSize; i++ {
		sb.WriteString("0.700,p1,Some One,500,90,25,2,15,50,2,5,3\n")
	}
	team, err := ParseTeam("t", strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, 557, team.Batters[0].PA)
	assert.Equal(t, 57, team.Batters[0].Walks)
}

func TestParseTeam_Errors(t *testing.T) {
	header := "playerid,Name,1B,2B,3B,HR,BB,IBB,HBP,AB,OPS\n"
	row := "1,A,90,25,2,15,50,2,5,500,0.700\n"
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"empty", "", "reading roster header"},
		{"missing column", "playerid,Name,1B\n", `missing column "2B"`},
		{"bad integer", header + "1,A,x,25,2,15,50,2,5,500,0.700\n", "invalid 1B"},
		{"bad OPS", header + "1,A,90,25,2,15,50,2,5,500,high\n", "invalid OPS"},
		{"too few batters", header + strings.Repeat(row, 8), "lineup must have exactly 9 batters"},
		{"too many batters", header + strings.Repeat(row, 10), "lineup must have exactly 9 batters"},
		{"hits above at bats", header + "1,A,400,100,20,50,50,2,5,500,0.700\n" + strings.Repeat(row, 8), "malformed batter profile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTeam("t", strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseTeam_WrongSize_IsLineupSizeError(t *testing.T) {
	csv := "playerid,Name,1B,2B,3B,HR,BB,IBB,HBP,AB,OPS\n1,A,90,25,2,15,50,2,5,500,0.700\n"
	_, err := ParseTeam("t", strings.NewReader(csv))
	assert.ErrorIs(t, err, sim.ErrLineupSize)
}

func TestTeam_RankedAndAverage(t *testing.T) {
	team, err := NewTeam("mixed", testutil.MixedTeam(t))
	require.NoError(t, err)

	ranked := team.Ranked()
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].OPS, ranked[i].OPS)
	}
	assert.Equal(t, "b8", ranked[0].Name)
	assert.Equal(t, "b2", ranked[sim.LineupSize-1].Name)
	assert.Equal(t, "b1", team.Batters[0].Name, "roster order is untouched")

	avg := team.Average()
	assert.NoError(t, avg.Validate())
	assert.Equal(t, sim.AverageRates(team.Batters), avg)
}

func TestTeam_Replace(t *testing.T) {
	team, err := NewTeam("mixed", testutil.MixedTeam(t))
	require.NoError(t, err)
	sub := testutil.MustProfile(t, "sub", 600, 100, 30, 5, 20, 60, 0.770)

	replaced, err := team.Replace("b3", sub)
	require.NoError(t, err)
	assert.Equal(t, "sub", replaced.Batters[2].Name)
	assert.Equal(t, "b3", team.Batters[2].Name, "original team is unchanged")

	_, err = team.Replace("nobody", sub)
	assert.Error(t, err)
}

func TestLoadLeague_ResolvesRostersAgainstLeagueFile(t *testing.T) {
	dir := t.TempDir()
	teams := filepath.Join(dir, "teams")
	require.NoError(t, os.Mkdir(teams, 0755))
	data, err := os.ReadFile(filepath.Join("testdata", "harbor.csv"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(teams, "harbor.csv"), data, 0644))

	path := filepath.Join(dir, "league.yaml")
	yaml := `
version: "1"
name: test
teams:
  - name: Harbor Hawks
    roster: teams/harbor.csv
    runs_per_game: 4.62
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	league, err := LoadLeague(path)
	require.NoError(t, err)
	require.Len(t, league.Teams, 1)
	assert.Equal(t, 4.62, league.Teams[0].RunsPerGame)
	assert.Equal(t, filepath.Join(dir, "teams", "harbor.csv"), league.RosterPath(league.Teams[0]))

	team, err := league.LoadTeam(league.Teams[0])
	require.NoError(t, err)
	assert.Equal(t, "Harbor Hawks", team.Name)
	assert.Len(t, team.Batters, sim.LineupSize)
}

func TestLoadLeague_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "teams:\n  - name: a\n    roster: a.csv\n    runs_per_gmae: 4\n", "parsing league config"},
		{"no teams", "version: \"1\"\nteams: []\n", "no teams"},
		{"missing roster", "teams:\n  - name: a\n    runs_per_game: 4\n", "roster is required"},
		{"duplicate", "teams:\n  - {name: a, roster: a.csv}\n  - {name: a, roster: b.csv}\n", "duplicate team"},
		{"negative runs", "teams:\n  - {name: a, roster: a.csv, runs_per_game: -1}\n", "runs_per_game"},
		{"future version", "version: \"9\"\nteams:\n  - {name: a, roster: a.csv}\n", "unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "league.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := LoadLeague(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadLeague_ExampleConfig(t *testing.T) {
	league, err := LoadLeague(filepath.Join("..", "..", "examples", "league.yaml"))
	require.NoError(t, err)
	for _, entry := range league.Teams {
		team, err := league.LoadTeam(entry)
		require.NoError(t, err, entry.Name)
		assert.Len(t, team.Batters, sim.LineupSize)
	}
}
