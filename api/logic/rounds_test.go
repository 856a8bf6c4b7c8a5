/* rounds_test.go
 * Contains unit tests for the round state resolver
 */

package logic

import (
	"testing"

	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
	"github.com/stretchr/testify/assert"
)

func TestResolveRoundState_NoGames(t *testing.T) {
	state := ResolveRoundState(nil)

	assert.Equal(t, shared.RoundOf64, state.CurrentRound)
	assert.Empty(t, state.VisibleOrder)
	assert.Empty(t, state.Visible)
}

func TestResolveRoundState_FirstRoundInProgress(t *testing.T) {
	games := []shared.Game{
		{GameID: 1, Round: shared.RoundOf64, Region: "East", Team1: "East 1", Team2: "East 16", Winner: "East 1"},
		{GameID: 2, Round: shared.RoundOf64, Region: "East", Team1: "East 8", Team2: "East 9"},
	}

	state := ResolveRoundState(games)

	assert.Equal(t, shared.RoundOf64, state.CurrentRound)
	assert.Equal(t, []string{shared.RoundOf64}, state.VisibleOrder)
	assert.Len(t, state.Visible[shared.RoundOf64], 2)
}

func TestResolveRoundState_CurrentRoundAdvances(t *testing.T) {
	games := []shared.Game{
		{GameID: 1, Round: shared.RoundOf64, Region: "East", Team1: "East 1", Team2: "East 16", Winner: "East 1"},
		{GameID: 2, Round: shared.RoundOf64, Region: "East", Team1: "East 8", Team2: "East 9", Winner: "East 9"},
		{GameID: 3, Round: shared.RoundOf32, Region: "East", Team1: "East 1", Team2: "East 9"},
	}

	state := ResolveRoundState(games)

	assert.Equal(t, shared.RoundOf32, state.CurrentRound)
	assert.Equal(t, []string{shared.RoundOf64, shared.RoundOf32}, state.VisibleOrder)
}

func TestResolveRoundState_StrayWinnerStaysInvisible(t *testing.T) {
	// The Sweet 16 winner must not become visible while the Round of 32 is
	// still undecided
	games := []shared.Game{
		{GameID: 1, Round: shared.RoundOf64, Region: "East", Team1: "East 1", Team2: "East 16", Winner: "East 1"},
		{GameID: 2, Round: shared.RoundOf32, Region: "East", Team1: "East 1", Team2: "East 9"},
		{GameID: 3, Round: shared.Sweet16, Region: "East", Team1: "East 1", Team2: "East 4", Winner: "East 1"},
	}

	state := ResolveRoundState(games)

	assert.Equal(t, shared.RoundOf32, state.CurrentRound)
	assert.Equal(t, []string{shared.RoundOf64, shared.RoundOf32}, state.VisibleOrder)
	assert.NotContains(t, state.Visible, shared.Sweet16)
	assert.Len(t, state.Anomalies, 1)
}

func TestResolveRoundState_MissingRoundStopsPrefix(t *testing.T) {
	// A recorded Round of 32 game cannot be visible when no Round of 64
	// games exist at all
	games := []shared.Game{
		{GameID: 1, Round: shared.RoundOf32, Region: "East", Team1: "East 1", Team2: "East 9", Winner: "East 1"},
	}

	state := ResolveRoundState(games)

	assert.Empty(t, state.VisibleOrder)
	assert.Equal(t, shared.RoundOf64, state.CurrentRound)
	assert.Len(t, state.Anomalies, 1)
}

func TestResolveRoundState_AllDecided(t *testing.T) {
	b := testBracket(t)
	games := decideTournament(t, b, depths(4), 2, chalk(b))

	state := ResolveRoundState(games)

	assert.Equal(t, shared.Championship, state.CurrentRound)
	assert.Equal(t, shared.RoundOrder, state.VisibleOrder)
	assert.Empty(t, state.Anomalies)
}

func TestResolveRoundState_VisiblePrefixInvariant(t *testing.T) {
	// Whatever the state, the visible rounds are a contiguous prefix of the
	// round order
	b := testBracket(t)
	for depth := 0; depth <= 4; depth++ {
		games := decideTournament(t, b, depths(depth), 0, chalk(b))
		state := ResolveRoundState(games)
		for i, round := range state.VisibleOrder {
			assert.Equal(t, shared.RoundOrder[i], round)
		}
	}
}

func TestResolveRegionStates_RegionsRunIndependently(t *testing.T) {
	b := testBracket(t)
	regionDepth := depths(1)
	regionDepth["East"] = 2
	games := decideTournament(t, b, regionDepth, 0, chalk(b))

	states := ResolveRegionStates(games)

	assert.Equal(t, shared.Sweet16, states["East"].CurrentRound)
	assert.Equal(t, shared.RoundOf32, states["West"].CurrentRound)
	assert.Contains(t, states["East"].Visible, shared.RoundOf32)
	assert.NotContains(t, states["West"].Visible, shared.Sweet16)
}

func TestResolveRoundState_Idempotent(t *testing.T) {
	b := testBracket(t)
	games := decideTournament(t, b, depths(2), 0, chalk(b))

	first := ResolveRoundState(games)
	second := ResolveRoundState(games)

	assert.Equal(t, first.CurrentRound, second.CurrentRound)
	assert.Equal(t, first.VisibleOrder, second.VisibleOrder)
	assert.Equal(t, first.Visible, second.Visible)
}

func TestValidateGames_WinnerMustBeOccupant(t *testing.T) {
	games := []shared.Game{
		{GameID: 1, Round: shared.RoundOf64, Region: "East", Team1: "East 1", Team2: "East 16", Winner: "West 5"},
	}

	err := ValidateGames(games)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "neither")
}

func TestValidateGames_UndecidedGamesAreFine(t *testing.T) {
	games := []shared.Game{
		{GameID: 1, Round: shared.RoundOf64, Region: "East", Team1: "East 1", Team2: "East 16"},
	}

	assert.NoError(t, ValidateGames(games))
}
