/* models.go
 * This file contains the structs, constants and helper functions that are shared between sub packages
 */

package shared

// Tournament rounds in bracket order. The first four rounds are played inside
// a region, the last two are interregional.
const (
	RoundOf64    = "Round of 64"
	RoundOf32    = "Round of 32"
	Sweet16      = "Sweet 16"
	Elite8       = "Elite 8"
	FinalFour    = "Final Four"
	Championship = "Championship"
)

// RoundOrder lists every round in the order it is played
var RoundOrder = []string{RoundOf64, RoundOf32, Sweet16, Elite8, FinalFour, Championship}

// RegionalRounds is the prefix of RoundOrder played inside a single region
var RegionalRounds = RoundOrder[:4]

// FirstRoundPairings holds the canonical seed matchups for the Round of 64,
// in the order games appear on a bracket sheet
var FirstRoundPairings = [8][2]int{
	{1, 16},
	{8, 9},
	{5, 12},
	{4, 13},
	{6, 11},
	{3, 14},
	{7, 10},
	{2, 15},
}

// RoundIndex returns the position of a round in RoundOrder, or -1 if the
// round name is not recognised
func RoundIndex(round string) int {
	for i, r := range RoundOrder {
		if r == round {
			return i
		}
	}
	return -1
}

// Team represents one seeded team inside a region
type Team struct {
	Name string `json:"team_name" bson:"team_name"`
	Seed int    `json:"seed" bson:"seed"`
}

// Region is a named group of exactly 16 seeded teams
type Region struct {
	Name  string `json:"region_name" bson:"region_name"`
	Teams []Team `json:"teams" bson:"teams"`
}

// Game is one recorded matchup. Region is empty for the interregional rounds.
// Winner is empty until the game has been played.
type Game struct {
	GameID int    `json:"game_id" bson:"game_id"`
	Round  string `json:"round" bson:"round"`
	Region string `json:"region,omitempty" bson:"region,omitempty"`
	Team1  string `json:"team1" bson:"team1"`
	Team2  string `json:"team2" bson:"team2"`
	Winner string `json:"winner,omitempty" bson:"winner,omitempty"`
}

// Decided reports whether the game has a recorded winner
func (g Game) Decided() bool {
	return g.Winner != ""
}

// HasTeam reports whether the named team is one of the game's occupants
func (g Game) HasTeam(name string) bool {
	return g.Team1 == name || g.Team2 == name
}

// Loser returns the occupant that did not win, or "" if the game is undecided
func (g Game) Loser() string {
	switch g.Winner {
	case "":
		return ""
	case g.Team1:
		return g.Team2
	default:
		return g.Team1
	}
}

// User represents a pool participant
type User struct {
	UserID   string
	Username string
}

// RoundWeights maps a round name to the points awarded for each surviving
// pick that wins a game in that round
type RoundWeights map[string]float64

// DefaultRoundWeights awards one point per win in every round
func DefaultRoundWeights() RoundWeights {
	w := make(RoundWeights, len(RoundOrder))
	for _, r := range RoundOrder {
		w[r] = 1
	}
	return w
}

// Weight returns the configured weight for a round, defaulting to 1 when the
// round has no explicit entry
func (w RoundWeights) Weight(round string) float64 {
	if w == nil {
		return 1
	}
	if v, ok := w[round]; ok {
		return v
	}
	return 1
}
