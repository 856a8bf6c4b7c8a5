/* rounds.go
 * Contains the round state resolver. Everything here is a pure function of
 * the recorded game list; callers must never cache a current round across
 * result updates, they recompute it on every read.
 */

package logic

import (
	"fmt"

	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
)

// RoundState is the derived view of the tournament at one point in time
type RoundState struct {
	// Rounds groups every recorded game by round name
	Rounds map[string][]shared.Game
	// Visible holds the strict sequential prefix: a round is included only
	// when every strictly earlier round is present and fully decided
	Visible map[string][]shared.Game
	// VisibleOrder lists the visible rounds in bracket order
	VisibleOrder []string
	// CurrentRound is the first visible round with an undecided game, or the
	// last visible round when everything visible is decided
	CurrentRound string
	// Anomalies describes recorded winners that lie beyond the visible
	// prefix. They are reported so the bad records can be fixed upstream,
	// and are never treated as decided.
	Anomalies []string
}

// ResolveRoundState derives the global round state from the recorded games
// Preconditions: Receives the full list of recorded games, any order
// Postconditions: Returns the derived state; with no games at all the
// current round defaults to the first round and nothing is visible
func ResolveRoundState(games []shared.Game) RoundState {
	return resolve(games, shared.RoundOrder)
}

// ResolveRegionStates derives an independent round state per region over the
// regional rounds only. A region can be ahead of the others; interregional
// rounds are excluded because they only exist once every region is decided.
func ResolveRegionStates(games []shared.Game) map[string]RoundState {
	byRegion := make(map[string][]shared.Game)
	for _, g := range games {
		if g.Region == "" {
			continue
		}
		if idx := shared.RoundIndex(g.Round); idx < 0 || idx >= len(shared.RegionalRounds) {
			continue
		}
		byRegion[g.Region] = append(byRegion[g.Region], g)
	}
	states := make(map[string]RoundState, len(byRegion))
	for region, regionGames := range byRegion {
		states[region] = resolve(regionGames, shared.RegionalRounds)
	}
	return states
}

func resolve(games []shared.Game, order []string) RoundState {
	state := RoundState{
		Rounds:  make(map[string][]shared.Game),
		Visible: make(map[string][]shared.Game),
	}
	for _, g := range games {
		if shared.RoundIndex(g.Round) < 0 {
			state.Anomalies = append(state.Anomalies, fmt.Sprintf("game %d has unknown round '%s'", g.GameID, g.Round))
			continue
		}
		state.Rounds[g.Round] = append(state.Rounds[g.Round], g)
	}

	// Build the visible prefix: stop at the first round that is missing or
	// has an undecided game. Later rounds stay invisible even if they happen
	// to contain recorded winners.
	for _, round := range order {
		roundGames, ok := state.Rounds[round]
		if !ok {
			break
		}
		state.Visible[round] = roundGames
		state.VisibleOrder = append(state.VisibleOrder, round)
		if !allDecided(roundGames) {
			break
		}
	}

	// Report stray winners beyond the prefix
	for _, round := range order {
		if _, visible := state.Visible[round]; visible {
			continue
		}
		for _, g := range state.Rounds[round] {
			if g.Decided() {
				state.Anomalies = append(state.Anomalies,
					fmt.Sprintf("game %d in '%s' has a recorded winner but an earlier round is not fully decided", g.GameID, round))
			}
		}
	}

	// Current round: first visible round with an undecided game, else the
	// last visible round, else the first round of the bracket
	for _, round := range state.VisibleOrder {
		if !allDecided(state.Visible[round]) {
			state.CurrentRound = round
			break
		}
	}
	if state.CurrentRound == "" {
		if n := len(state.VisibleOrder); n > 0 {
			state.CurrentRound = state.VisibleOrder[n-1]
		} else {
			state.CurrentRound = order[0]
		}
	}
	return state
}

func allDecided(games []shared.Game) bool {
	for _, g := range games {
		if !g.Decided() {
			return false
		}
	}
	return true
}

// ValidateGames checks the data integrity of the recorded games. A winner
// that equals neither occupant is a configuration error, not a runtime
// condition, and the affected computation must not proceed.
func ValidateGames(games []shared.Game) error {
	for _, g := range games {
		if g.Decided() && !g.HasTeam(g.Winner) {
			return fmt.Errorf("game %d winner '%s' is neither '%s' nor '%s'", g.GameID, g.Winner, g.Team1, g.Team2)
		}
	}
	return nil
}
