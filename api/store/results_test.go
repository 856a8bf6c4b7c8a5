/* results_test.go
 * Contains unit tests for the game id scheme and the repair planner. The planner is pure, so the
 * cascade is tested without a database.
 */

package store

import (
	"fmt"
	"testing"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
	"github.com/stretchr/testify/assert"
)

func testBracket(t *testing.T) *bracket.Bracket {
	t.Helper()
	regions := make([]shared.Region, 0, 4)
	for _, name := range []string{"East", "West", "South", "Midwest"} {
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

func TestGameIDFor(t *testing.T) {
	// Rounds occupy fixed id blocks: 1..32, 33..48, 49..56, 57..60, 61..62, 63
	assert.Equal(t, 1, GameIDFor(0, 0))
	assert.Equal(t, 32, GameIDFor(0, 31))
	assert.Equal(t, 33, GameIDFor(1, 0))
	assert.Equal(t, 49, GameIDFor(2, 0))
	assert.Equal(t, 57, GameIDFor(3, 0))
	assert.Equal(t, 61, GameIDFor(4, 0))
	assert.Equal(t, 63, GameIDFor(5, 0))
}

func TestPlanRepairs_CreatesNextRoundGame(t *testing.T) {
	b := testBracket(t)
	games := b.FirstRoundGames()
	games[0].Winner = "East 1"
	games[1].Winner = "East 9"

	repairs := PlanRepairs(b, games)

	assert.Len(t, repairs, 1)
	assert.Equal(t, shared.Game{
		GameID: 33,
		Round:  shared.RoundOf32,
		Region: "East",
		Team1:  "East 1",
		Team2:  "East 9",
	}, repairs[0])
}

func TestPlanRepairs_NoRepairsWhileFeedersUndecided(t *testing.T) {
	b := testBracket(t)
	games := b.FirstRoundGames()
	games[0].Winner = "East 1"

	assert.Empty(t, PlanRepairs(b, games))
}

func TestPlanRepairs_ExistingGameLeftAlone(t *testing.T) {
	b := testBracket(t)
	games := b.FirstRoundGames()
	games[0].Winner = "East 1"
	games[1].Winner = "East 9"
	games = append(games, shared.Game{
		GameID: 33, Round: shared.RoundOf32, Region: "East", Team1: "East 1", Team2: "East 9", Winner: "East 1",
	})

	assert.Empty(t, PlanRepairs(b, games))
}

func TestPlanRepairs_RewritesMismatchAndClearsWinner(t *testing.T) {
	// The game 1 result was corrected from East 1 to East 16: the recorded Round of 32 game
	// no longer matches and its winner is no longer playing
	b := testBracket(t)
	games := b.FirstRoundGames()
	games[0].Winner = "East 16"
	games[1].Winner = "East 9"
	games = append(games, shared.Game{
		GameID: 33, Round: shared.RoundOf32, Region: "East", Team1: "East 1", Team2: "East 9", Winner: "East 1",
	})

	repairs := PlanRepairs(b, games)

	assert.Len(t, repairs, 1)
	assert.Equal(t, "East 16", repairs[0].Team1)
	assert.Equal(t, "East 9", repairs[0].Team2)
	assert.Empty(t, repairs[0].Winner)
}

func TestPlanRepairs_KeepsWinnerStillPlaying(t *testing.T) {
	// The correction only replaced the losing side, so the recorded winner stands
	b := testBracket(t)
	games := b.FirstRoundGames()
	games[0].Winner = "East 16"
	games[1].Winner = "East 9"
	games = append(games, shared.Game{
		GameID: 33, Round: shared.RoundOf32, Region: "East", Team1: "East 1", Team2: "East 9", Winner: "East 9",
	})

	repairs := PlanRepairs(b, games)

	assert.Len(t, repairs, 1)
	assert.Equal(t, "East 9", repairs[0].Winner)
}

func TestPlanRepairs_CascadesThroughDecidedRounds(t *testing.T) {
	// A corrected Round of 64 winner invalidates the games recorded above it in turn
	b := testBracket(t)
	games := b.FirstRoundGames()
	for i := range games {
		games[i].Winner = games[i].Team1
	}
	games[1].Winner = "East 9"
	games = append(games,
		shared.Game{GameID: 33, Round: shared.RoundOf32, Region: "East", Team1: "East 1", Team2: "East 8", Winner: "East 8"},
	)

	repairs := PlanRepairs(b, games)

	// Game 33 is rewritten to East 1 vs East 9 with no winner; the remaining Round of 32
	// games are created fresh from the decided first round
	byID := make(map[int]shared.Game)
	for _, g := range repairs {
		byID[g.GameID] = g
	}
	assert.Equal(t, "East 9", byID[33].Team2)
	assert.Empty(t, byID[33].Winner)
	assert.Len(t, repairs, 16)
}

func TestPlanRepairs_InterregionalGames(t *testing.T) {
	// With every regional round decided, the Final Four pairs the first two regions'
	// champions and the last two regions' champions
	b := testBracket(t)
	var games []shared.Game
	for round := 0; round < len(shared.RegionalRounds); round++ {
		for i := 0; i < b.NumSlots(round); i++ {
			occ := b.Occupants(round, i)
			games = append(games, shared.Game{
				GameID: GameIDFor(round, i),
				Round:  shared.RoundOrder[round],
				Region: b.SlotRegion(round, i),
				Team1:  occ[0],
				Team2:  occ[len(occ)/2],
				Winner: occ[0],
			})
		}
	}

	repairs := PlanRepairs(b, games)

	byID := make(map[int]shared.Game)
	for _, g := range repairs {
		byID[g.GameID] = g
	}
	assert.Equal(t, "East 1", byID[61].Team1)
	assert.Equal(t, "West 1", byID[61].Team2)
	assert.Equal(t, "South 1", byID[62].Team1)
	assert.Equal(t, "Midwest 1", byID[62].Team2)
	assert.Empty(t, byID[61].Region)
}
