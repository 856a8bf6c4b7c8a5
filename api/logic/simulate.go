/* simulate.go
 * Contains the bracket completion engine. Given the fixed results so far it
 * computes, per participant, the best case and worst case final score over
 * every legal way the remaining games could resolve.
 *
 * Best case explores every advancement choice exhaustively. Rather than
 * enumerating whole-bracket completions (2^32 of them on an empty bracket),
 * it walks the slot tree bottom up keeping, per subtree, the maximum bonus
 * obtainable for each possible advancing pick. Subtrees only interact
 * through the team they advance, so this is the same search with the shared
 * work folded together.
 *
 * Worst case assumes every undecided game resolves against the participant:
 * a bonus is only awarded when every possible occupant of a slot is one of
 * their surviving picks, so the point is certain regardless of the outcome.
 */

package logic

import (
	"fmt"
	"math"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
)

// Scenario holds one participant's simulated score bounds. The invariant
// Current <= WorstCase <= BestCase always holds, and all three are equal
// once every game is decided.
type Scenario struct {
	Current   float64
	WorstCase float64
	BestCase  float64
}

// SimulateScenario computes a participant's current, worst case and best
// case scores against the recorded games.
// Preconditions: Receives the bracket topology, the full recorded game list,
// the participant's original picks and the round weights
// Postconditions: Returns the scenario, or a configuration error when the
// recorded games contradict the bracket
func SimulateScenario(b *bracket.Bracket, games []shared.Game, picks []string, weights shared.RoundWeights) (Scenario, error) {
	if err := ValidateGames(games); err != nil {
		return Scenario{}, err
	}
	scorable := ScorableResults(games)
	fixed, err := fixedWinners(b, scorable)
	if err != nil {
		return Scenario{}, err
	}
	sim := &simulation{
		bracket: b,
		fixed:   fixed,
		alive:   SurvivingPicks(picks, scorable),
		weights: weights,
	}
	current := BaseScore(picks, scorable, weights)
	return Scenario{
		Current:   current,
		WorstCase: current + sim.worstCaseBonus(),
		BestCase:  current + sim.bestCaseBonus(),
	}, nil
}

// fixedWinners maps every decided scorable game onto its slot in the
// topology. These outcomes are honored by the simulation, never re-decided.
func fixedWinners(b *bracket.Bracket, scorable map[string][]shared.Game) (map[int]string, error) {
	fixed := make(map[int]string)
	for roundIdx, round := range shared.RoundOrder {
		for _, g := range scorable[round] {
			if !g.Decided() {
				continue
			}
			slot1, ok1 := b.SlotFor(roundIdx, g.Team1)
			slot2, ok2 := b.SlotFor(roundIdx, g.Team2)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("game %d references a team that is not in the bracket", g.GameID)
			}
			if slot1 != slot2 {
				return nil, fmt.Errorf("game %d pairs '%s' and '%s' which cannot meet in %s", g.GameID, g.Team1, g.Team2, round)
			}
			key := slotKey(roundIdx, slot1)
			if prev, ok := fixed[key]; ok && prev != g.Winner {
				return nil, fmt.Errorf("conflicting winners '%s' and '%s' recorded for the same %s slot", prev, g.Winner, round)
			}
			fixed[key] = g.Winner
		}
	}
	return fixed, nil
}

// slotKey gives every slot in the 63-slot tree a unique key
func slotKey(round, index int) int {
	return round*32 + index
}

type simulation struct {
	bracket *bracket.Bracket
	fixed   map[int]string
	alive   map[string]bool
	weights shared.RoundWeights
}

// branch is the best-case summary of one subtree: for each surviving pick
// that could advance out of it, the maximum bonus obtainable below, plus the
// best bonus when a non-pick advances (negative infinity when impossible)
type branch struct {
	survivors map[string]float64
	outsider  float64
}

func (s *simulation) bestCaseBonus() float64 {
	final := s.best(len(shared.RoundOrder)-1, 0)
	best := final.outsider
	for _, v := range final.survivors {
		if v > best {
			best = v
		}
	}
	if math.IsInf(best, -1) || best < 0 {
		return 0
	}
	return best
}

// best recursively computes the branch summary for one slot
func (s *simulation) best(round, index int) branch {
	weight := s.weights.Weight(shared.RoundOrder[round])

	if round == 0 {
		if w, ok := s.fixed[slotKey(0, index)]; ok {
			return s.fixedBranch(w, 0)
		}
		br := branch{survivors: make(map[string]float64), outsider: math.Inf(-1)}
		for _, team := range s.bracket.Occupants(0, index) {
			if s.alive[team] {
				br.survivors[team] = weight
			} else {
				br.outsider = 0
			}
		}
		return br
	}

	left := s.best(round-1, 2*index)
	right := s.best(round-1, 2*index+1)

	if w, ok := s.fixed[slotKey(round, index)]; ok {
		// A decided game: its feeders are decided too, so each child branch
		// is a single option whose value is the bonus already accumulated
		return s.fixedBranch(w, branchValue(left)+branchValue(right))
	}

	// Undecided: try every pair of advancing candidates from the two
	// feeders, and for each pair both choices of game winner
	br := branch{survivors: make(map[string]float64), outsider: math.Inf(-1)}
	for _, cl := range candidates(left) {
		for _, cr := range candidates(right) {
			below := cl.value + cr.value
			for _, adv := range [2]candidate{cl, cr} {
				if adv.team != "" {
					if v, ok := br.survivors[adv.team]; !ok || below+weight > v {
						br.survivors[adv.team] = below + weight
					}
				} else if below > br.outsider {
					br.outsider = below
				}
			}
		}
	}
	return br
}

// fixedBranch wraps a recorded winner: no bonus for this slot, it is already
// reflected in the base score
func (s *simulation) fixedBranch(winner string, below float64) branch {
	if s.alive[winner] {
		return branch{survivors: map[string]float64{winner: below}, outsider: math.Inf(-1)}
	}
	return branch{survivors: make(map[string]float64), outsider: below}
}

// candidate is one possible advancing team out of a subtree. An empty team
// name stands for any non-pick, they are interchangeable.
type candidate struct {
	team  string
	value float64
}

func candidates(br branch) []candidate {
	out := make([]candidate, 0, len(br.survivors)+1)
	for team, value := range br.survivors {
		out = append(out, candidate{team: team, value: value})
	}
	if !math.IsInf(br.outsider, -1) {
		out = append(out, candidate{value: br.outsider})
	}
	return out
}

func branchValue(br branch) float64 {
	v := br.outsider
	for _, sv := range br.survivors {
		if sv > v {
			v = sv
		}
	}
	return v
}

// token is the team the worst-case walk advances out of a subtree; pick
// reports whether it is one of the participant's surviving picks
type token struct {
	team string
	pick bool
}

func (s *simulation) worstCaseBonus() float64 {
	_, bonus := s.worst(len(shared.RoundOrder)-1, 0)
	return bonus
}

// worst resolves every undecided game against the participant: whenever a
// slot could be reached by a team they do not hold, that team advances. The
// bonus is only awarded when the participant holds every possible occupant.
func (s *simulation) worst(round, index int) (token, float64) {
	if round == 0 {
		if w, ok := s.fixed[slotKey(0, index)]; ok {
			return token{team: w, pick: s.alive[w]}, 0
		}
		occ := s.bracket.Occupants(0, index)
		if s.alive[occ[0]] && s.alive[occ[1]] {
			return token{team: occ[0], pick: true}, s.weights.Weight(shared.RoundOrder[0])
		}
		return token{}, 0
	}

	left, leftBonus := s.worst(round-1, 2*index)
	right, rightBonus := s.worst(round-1, 2*index+1)
	below := leftBonus + rightBonus

	if w, ok := s.fixed[slotKey(round, index)]; ok {
		return token{team: w, pick: s.alive[w]}, below
	}
	if left.pick && right.pick {
		// The participant holds both sides: the point is guaranteed no
		// matter which one wins
		return token{team: left.team, pick: true}, below + s.weights.Weight(shared.RoundOrder[round])
	}
	return token{}, below
}
