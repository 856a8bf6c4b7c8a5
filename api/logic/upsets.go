/* upsets.go
 * Contains the upset listing: decided games won by the worse-seeded team
 */

package logic

import (
	"sort"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
)

// Upset is a decided game where the winner's seed number is higher (worse)
// than the loser's
type Upset struct {
	Round        string
	Winner       string
	WinnerSeed   int
	Loser        string
	LoserSeed    int
	Differential int
}

// Upsets lists the decided scorable games that went against seeding, biggest
// seed differential first
func Upsets(b *bracket.Bracket, games []shared.Game) []Upset {
	scorable := ScorableResults(games)
	var upsets []Upset
	for _, round := range shared.RoundOrder {
		for _, g := range scorable[round] {
			if !g.Decided() {
				continue
			}
			winnerSeed, ok1 := b.TeamSeed(g.Winner)
			loserSeed, ok2 := b.TeamSeed(g.Loser())
			if !ok1 || !ok2 || winnerSeed <= loserSeed {
				continue
			}
			upsets = append(upsets, Upset{
				Round:        round,
				Winner:       g.Winner,
				WinnerSeed:   winnerSeed,
				Loser:        g.Loser(),
				LoserSeed:    loserSeed,
				Differential: winnerSeed - loserSeed,
			})
		}
	}
	sort.SliceStable(upsets, func(i, j int) bool {
		return upsets[i].Differential > upsets[j].Differential
	})
	return upsets
}
