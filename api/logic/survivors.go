/* survivors.go
 * Contains the survivor pruner: which of a participant's original picks are
 * still alive given the decided results so far.
 */

package logic

import (
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
)

// SurvivingPicks prunes a participant's original picks against the decided
// scorable games. A pick that played a decided game and did not win is
// eliminated; a pick that has not appeared in a decided game is untouched.
// Decided games inside the partially decided current round also eliminate
// their losers. That reaches one round further than pruning only fully
// decided rounds, but the simulation treats those games as fixed winners
// either way, so the resulting bounds are identical.
// An empty result means the participant is eliminated; it is never replaced
// with the original pick set, which would overstate their potential.
// Preconditions: Receives the original picks and the scorable games from
// ScorableResults
// Postconditions: Returns the surviving subset as a set
func SurvivingPicks(picks []string, scorable map[string][]shared.Game) map[string]bool {
	alive := make(map[string]bool, len(picks))
	for _, team := range picks {
		alive[team] = true
	}
	for _, round := range shared.RoundOrder {
		for _, g := range scorable[round] {
			if !g.Decided() {
				// This game's outcome is not yet certain; survivors entering
				// it stay alive for the simulation to branch on
				continue
			}
			if loser := g.Loser(); alive[loser] {
				delete(alive, loser)
			}
		}
	}
	return alive
}
