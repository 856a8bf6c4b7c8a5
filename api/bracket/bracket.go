/* bracket.go
 * Contains the bracket configuration loader and the slot topology builder.
 * The topology maps every team to its path through the single elimination
 * tree so the scoring and simulation logic never has to guess matchups.
 */

package bracket

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
)

// Config mirrors tournament_bracket.json: four regions of sixteen seeded
// teams, plus optional per round scoring weights
type Config struct {
	Regions      []shared.Region    `json:"regions"`
	RoundWeights map[string]float64 `json:"round_weights,omitempty"`
}

// LoadConfig reads and validates a bracket configuration file
// Preconditions: Receives the path to a bracket JSON file
// Postconditions: Returns the parsed config, or an error if the file is
// missing, malformed or fails validation
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bracket file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bracket file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structural invariants of the bracket configuration.
// A bracket that fails validation must never reach the simulation engine.
func (c *Config) Validate() error {
	if len(c.Regions) != 4 {
		return fmt.Errorf("expected 4 regions, found %d", len(c.Regions))
	}
	seen := make(map[string]string)
	for _, region := range c.Regions {
		if region.Name == "" {
			return fmt.Errorf("region with empty name")
		}
		if len(region.Teams) != 16 {
			return fmt.Errorf("region '%s' must have 16 seeds, found %d", region.Name, len(region.Teams))
		}
		seeds := make(map[int]bool, 16)
		for _, team := range region.Teams {
			if team.Name == "" {
				return fmt.Errorf("region '%s' has a seed %d with no team name", region.Name, team.Seed)
			}
			if team.Seed < 1 || team.Seed > 16 {
				return fmt.Errorf("region '%s' team '%s' has invalid seed %d", region.Name, team.Name, team.Seed)
			}
			if seeds[team.Seed] {
				return fmt.Errorf("region '%s' has duplicate seed %d", region.Name, team.Seed)
			}
			seeds[team.Seed] = true
			if other, ok := seen[team.Name]; ok {
				return fmt.Errorf("team '%s' appears in both region '%s' and region '%s'", team.Name, other, region.Name)
			}
			seen[team.Name] = region.Name
		}
		// Every pairing slot needs a mapped team
		for _, pair := range shared.FirstRoundPairings {
			if !seeds[pair[0]] || !seeds[pair[1]] {
				return fmt.Errorf("region '%s' is missing a team for pairing %dv%d", region.Name, pair[0], pair[1])
			}
		}
	}
	for round, weight := range c.RoundWeights {
		if shared.RoundIndex(round) < 0 {
			return fmt.Errorf("round weight for unknown round '%s'", round)
		}
		if weight <= 0 {
			return fmt.Errorf("round weight for '%s' must be positive, got %v", round, weight)
		}
	}
	return nil
}

// Weights returns the configured round weights merged over the defaults
func (c *Config) Weights() shared.RoundWeights {
	w := shared.DefaultRoundWeights()
	for round, weight := range c.RoundWeights {
		w[round] = weight
	}
	return w
}

// Bracket is the fixed slot topology for one tournament. Round k has 32>>k
// slots; slot i of round k+1 is fed by slots 2i and 2i+1 of round k. Regions
// occupy contiguous slot blocks in configuration order, which makes the
// first semifinal region 1 vs region 2 and the second region 3 vs region 4.
type Bracket struct {
	regions   []shared.Region
	seeds     map[string]int
	regionOf  map[string]string
	firstSlot map[string]int
	occupants [6][][]string
	teams     []string
}

// New builds the slot topology from a validated configuration
// Preconditions: Receives a bracket config
// Postconditions: Returns the built topology, or a configuration error
func New(cfg *Config) (*Bracket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Bracket{
		regions:   cfg.Regions,
		seeds:     make(map[string]int, 64),
		regionOf:  make(map[string]string, 64),
		firstSlot: make(map[string]int, 64),
	}
	// First round occupants come straight from the seed pairing table
	b.occupants[0] = make([][]string, 32)
	for r, region := range cfg.Regions {
		seedToTeam := make(map[int]string, 16)
		for _, team := range region.Teams {
			seedToTeam[team.Seed] = team.Name
			b.seeds[team.Name] = team.Seed
			b.regionOf[team.Name] = region.Name
		}
		for p, pair := range shared.FirstRoundPairings {
			slot := r*8 + p
			team1 := seedToTeam[pair[0]]
			team2 := seedToTeam[pair[1]]
			b.occupants[0][slot] = []string{team1, team2}
			b.firstSlot[team1] = slot
			b.firstSlot[team2] = slot
			b.teams = append(b.teams, team1, team2)
		}
	}
	// Later rounds take the union of their two feeder slots
	for round := 1; round < len(shared.RoundOrder); round++ {
		count := 32 >> round
		b.occupants[round] = make([][]string, count)
		for i := 0; i < count; i++ {
			left := b.occupants[round-1][2*i]
			right := b.occupants[round-1][2*i+1]
			merged := make([]string, 0, len(left)+len(right))
			merged = append(merged, left...)
			merged = append(merged, right...)
			b.occupants[round][i] = merged
		}
	}
	return b, nil
}

// NumSlots returns the number of game slots in a round
func (b *Bracket) NumSlots(round int) int {
	return 32 >> round
}

// Occupants returns the possible occupant teams of a slot
func (b *Bracket) Occupants(round, index int) []string {
	return b.occupants[round][index]
}

// SlotFor returns the slot index a team would occupy in the given round if
// it survived that far. The second return is false for unknown teams.
func (b *Bracket) SlotFor(round int, team string) (int, bool) {
	first, ok := b.firstSlot[team]
	if !ok {
		return 0, false
	}
	return first >> round, true
}

// SlotRegion returns the region a slot belongs to, or "" for the
// interregional rounds
func (b *Bracket) SlotRegion(round, index int) string {
	if round >= len(shared.RegionalRounds) {
		return ""
	}
	perRegion := 8 >> round
	return b.regions[index/perRegion].Name
}

// Teams returns every team in the bracket, in slot order
func (b *Bracket) Teams() []string {
	out := make([]string, len(b.teams))
	copy(out, b.teams)
	return out
}

// TeamSeed returns a team's seed within its region
func (b *Bracket) TeamSeed(team string) (int, bool) {
	seed, ok := b.seeds[team]
	return seed, ok
}

// TeamRegion returns the name of the region a team belongs to
func (b *Bracket) TeamRegion(team string) (string, bool) {
	region, ok := b.regionOf[team]
	return region, ok
}

// RegionNames returns the region names in configuration order
func (b *Bracket) RegionNames() []string {
	names := make([]string, len(b.regions))
	for i, r := range b.regions {
		names[i] = r.Name
	}
	return names
}

// FirstRoundGames produces the seeded Round of 64 game list in fixed order,
// ready to be persisted when a new tournament is imported
func (b *Bracket) FirstRoundGames() []shared.Game {
	games := make([]shared.Game, 0, 32)
	id := 1
	for r := range b.regions {
		for p := range shared.FirstRoundPairings {
			occ := b.occupants[0][r*8+p]
			games = append(games, shared.Game{
				GameID: id,
				Round:  shared.RoundOf64,
				Region: b.regions[r].Name,
				Team1:  occ[0],
				Team2:  occ[1],
			})
			id++
		}
	}
	return games
}
