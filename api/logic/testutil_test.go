/* testutil_test.go
 * Shared fixtures for the logic package tests: a four region bracket and a
 * helper that plays the tournament forward to any point
 */

package logic

import (
	"fmt"
	"testing"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
	"github.com/stretchr/testify/assert"
)

var testRegionNames = []string{"East", "West", "South", "Midwest"}

// testBracket builds a bracket where every team is named "<region> <seed>"
func testBracket(t *testing.T) *bracket.Bracket {
	t.Helper()
	regions := make([]shared.Region, 0, 4)
	for _, name := range testRegionNames {
		teams := make([]shared.Team, 0, 16)
		for seed := 1; seed <= 16; seed++ {
			teams = append(teams, shared.Team{Name: fmt.Sprintf("%s %d", name, seed), Seed: seed})
		}
		regions = append(regions, shared.Region{Name: name, Teams: teams})
	}
	b, err := bracket.New(&bracket.Config{Regions: regions})
	assert.NoError(t, err)
	return b
}

// chalk always advances the better seeded team; ties go to the first listed
func chalk(b *bracket.Bracket) func(t1, t2 string) string {
	return func(t1, t2 string) string {
		s1, _ := b.TeamSeed(t1)
		s2, _ := b.TeamSeed(t2)
		if s2 < s1 {
			return t2
		}
		return t1
	}
}

// depths gives every region the same number of decided rounds
func depths(n int) map[string]int {
	m := make(map[string]int, len(testRegionNames))
	for _, name := range testRegionNames {
		m[name] = n
	}
	return m
}

// decideTournament plays the bracket forward. Each region has its first
// regionDepth rounds fully decided (0..4) and the next round's games, whose
// occupants are then known, recorded without winners. Once every region is
// fully decided, interDepth (0..2) interregional rounds are decided the same
// way.
func decideTournament(t *testing.T, b *bracket.Bracket, regionDepth map[string]int, interDepth int, winner func(t1, t2 string) string) []shared.Game {
	t.Helper()

	var win [6][]string
	for round := 0; round < len(shared.RoundOrder); round++ {
		win[round] = make([]string, b.NumSlots(round))
		for i := range win[round] {
			t1, t2 := slotTeams(b, win, round, i)
			win[round][i] = winner(t1, t2)
		}
	}

	var games []shared.Game
	id := 1
	emit := func(round, i int, decided bool) {
		t1, t2 := slotTeams(b, win, round, i)
		g := shared.Game{
			GameID: id,
			Round:  shared.RoundOrder[round],
			Region: b.SlotRegion(round, i),
			Team1:  t1,
			Team2:  t2,
		}
		if decided {
			g.Winner = win[round][i]
		}
		games = append(games, g)
		id++
	}

	for round := 0; round < len(shared.RegionalRounds); round++ {
		for i := 0; i < b.NumSlots(round); i++ {
			depth := regionDepth[b.SlotRegion(round, i)]
			switch {
			case round < depth:
				emit(round, i, true)
			case round == depth:
				emit(round, i, false)
			}
		}
	}

	allRegionsDone := true
	for _, name := range b.RegionNames() {
		if regionDepth[name] < len(shared.RegionalRounds) {
			allRegionsDone = false
		}
	}
	if allRegionsDone {
		for round := 4; round < len(shared.RoundOrder); round++ {
			for i := 0; i < b.NumSlots(round); i++ {
				switch {
				case round-4 < interDepth:
					emit(round, i, true)
				case round-4 == interDepth:
					emit(round, i, false)
				}
			}
		}
	}
	return games
}

func slotTeams(b *bracket.Bracket, win [6][]string, round, i int) (string, string) {
	if round == 0 {
		occ := b.Occupants(0, i)
		return occ[0], occ[1]
	}
	return win[round-1][2*i], win[round-1][2*i+1]
}
