/* scoring.go
 * Contains the base scorer: points already earned from decided games, with
 * no hypotheticals. The scorable set it derives is also what the simulation
 * engine treats as fixed outcomes, so a point is never counted twice.
 */

package logic

import (
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
)

// ScorableResults returns the games whose outcomes are settled enough to
// score, grouped by round. Regional rounds use each region's own visible
// prefix, since one region can be ahead of the others. The interregional
// rounds only become scorable once every earlier round is decided globally,
// which is exactly when they are globally visible.
func ScorableResults(games []shared.Game) map[string][]shared.Game {
	scorable := make(map[string][]shared.Game)
	for _, state := range ResolveRegionStates(games) {
		for round, roundGames := range state.Visible {
			scorable[round] = append(scorable[round], roundGames...)
		}
	}
	global := ResolveRoundState(games)
	for _, round := range []string{shared.FinalFour, shared.Championship} {
		if roundGames, ok := global.Visible[round]; ok {
			scorable[round] = append(scorable[round], roundGames...)
		}
	}
	return scorable
}

// BaseScore computes a participant's current score: the round weight for
// every scorable game won by one of their original picks. Picks eliminated
// later keep the points they already earned.
// Preconditions: Receives the participant's original picks, the scorable
// games from ScorableResults, and the round weights
// Postconditions: Returns the current score; zero picks scores zero
func BaseScore(picks []string, scorable map[string][]shared.Game, weights shared.RoundWeights) float64 {
	picked := make(map[string]bool, len(picks))
	for _, team := range picks {
		picked[team] = true
	}
	var total float64
	for _, round := range shared.RoundOrder {
		for _, g := range scorable[round] {
			if g.Decided() && picked[g.Winner] {
				total += weights.Weight(round)
			}
		}
	}
	return total
}

// Pick display statuses used by the pool overview
const (
	PickStatusWon     = "won"     // won its game in the current round
	PickStatusOut     = "out"     // lost a decided game
	PickStatusPending = "pending" // still alive, current round game not decided
)

// PickStatus classifies one pick for display against the scorable games
func PickStatus(team string, scorable map[string][]shared.Game, currentRound string) string {
	for _, round := range shared.RoundOrder {
		for _, g := range scorable[round] {
			if g.Decided() && g.HasTeam(team) && g.Winner != team {
				return PickStatusOut
			}
		}
	}
	for _, g := range scorable[currentRound] {
		if g.Decided() && g.Winner == team {
			return PickStatusWon
		}
	}
	return PickStatusPending
}

// PickPoints returns the points one team has earned so far
func PickPoints(team string, scorable map[string][]shared.Game, weights shared.RoundWeights) float64 {
	var total float64
	for _, round := range shared.RoundOrder {
		for _, g := range scorable[round] {
			if g.Decided() && g.Winner == team {
				total += weights.Weight(round)
				break
			}
		}
	}
	return total
}
