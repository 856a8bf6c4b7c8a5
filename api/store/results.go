/* results.go
 * Contains the methods for interacting with the tournament_results collection, plus the repair pass that
 * keeps later round games consistent with the winners recorded below them
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchTournamentResults returns every recorded game, ordered by game id
// Preconditions: Receives receiver pointer for Store which contains the DB connection
// Postconditions: Returns slice of Game, or an error if it occurs
func (s *Store) FetchTournamentResults() ([]shared.Game, error) {
	opts := options.Find().SetSort(bson.D{{Key: "game_id", Value: 1}})

	cursor, err := s.Collections.Results.Find(context.TODO(), bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching results from db: %w", err)
	}

	var results []shared.Game
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of games: %w", err)
	}
	return results, nil
}

// ImportFirstRound seeds the results collection with the Round of 64 games. It is a no-op when the
// collection already holds games, so restarting the service never wipes recorded results.
// Preconditions: Receives the Round of 64 games produced from the bracket
// Postconditions: Inserts the games on first run, or returns an error if it occurs
func (s *Store) ImportFirstRound(games []shared.Game) error {
	count, err := s.Collections.Results.CountDocuments(context.TODO(), bson.D{})
	if err != nil {
		return fmt.Errorf("failed to count existing games: %w", err)
	}
	if count > 0 {
		log.Println("results collection already seeded, skipping first round import")
		return nil
	}

	docs := make([]interface{}, len(games))
	for i, g := range games {
		docs[i] = g
	}
	if _, err := s.Collections.Results.InsertMany(context.TODO(), docs); err != nil {
		return fmt.Errorf("failed to insert first round games: %w", err)
	}
	return nil
}

// RecordGameResult sets the winner of one game and repairs the rounds above it: whenever both feeder
// games of a slot are decided, the next round's game is created or rewritten to pair their winners.
// Preconditions: Receives the bracket topology, the game id and the winning team name
// Postconditions: Updates the results collection, or returns an error if the game is unknown or the
// winner is not one of its teams
func (s *Store) RecordGameResult(b *bracket.Bracket, gameID int, winner string) error {
	var game shared.Game
	err := s.Collections.Results.FindOne(context.TODO(), bson.M{"game_id": gameID}).Decode(&game)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("no game with id %d", gameID)
		}
		return fmt.Errorf("lookup for game %d failed: %w", gameID, err)
	}
	if !game.HasTeam(winner) {
		return fmt.Errorf("'%s' is not playing in game %d (%s vs %s)", winner, gameID, game.Team1, game.Team2)
	}

	game.Winner = winner
	if err := s.upsertGame(game); err != nil {
		return err
	}

	games, err := s.FetchTournamentResults()
	if err != nil {
		return err
	}
	for _, g := range PlanRepairs(b, games) {
		if err := s.upsertGame(g); err != nil {
			return err
		}
	}
	return nil
}

// upsertGame writes one game keyed by its game id
func (s *Store) upsertGame(g shared.Game) error {
	filter := bson.M{"game_id": g.GameID}
	update := bson.M{"$set": bson.M{
		"round":  g.Round,
		"region": g.Region,
		"team1":  g.Team1,
		"team2":  g.Team2,
		"winner": g.Winner,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.Results.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert game %d: %w", g.GameID, err)
	}
	return nil
}

// roundBaseID gives the first game id of each round. Round of 64 games are 1..32, the championship is 63.
func roundBaseID(round int) int {
	base := 1
	for k := 0; k < round; k++ {
		base += 32 >> k
	}
	return base
}

// GameIDFor returns the fixed game id of a slot in the topology
func GameIDFor(round, index int) int {
	return roundBaseID(round) + index
}

// PlanRepairs computes the upserts needed to keep later round games consistent with the decided games
// below them. For each slot whose two feeder games are decided, the slot's game must exist and pair the
// feeder winners; a game whose teams no longer match is rewritten, and its winner cleared unless it is
// still one of the occupants. This is a pure function so the cascade can be tested without a database.
// Preconditions: Receives the bracket topology and the full recorded game list
// Postconditions: Returns the games to upsert
func PlanRepairs(b *bracket.Bracket, games []shared.Game) []shared.Game {
	byID := make(map[int]shared.Game, len(games))
	for _, g := range games {
		byID[g.GameID] = g
	}

	var repairs []shared.Game
	for round := 1; round < len(shared.RoundOrder); round++ {
		for i := 0; i < b.NumSlots(round); i++ {
			left, okL := byID[GameIDFor(round-1, 2*i)]
			right, okR := byID[GameIDFor(round-1, 2*i+1)]
			if !okL || !okR || !left.Decided() || !right.Decided() {
				continue
			}

			want := shared.Game{
				GameID: GameIDFor(round, i),
				Round:  shared.RoundOrder[round],
				Region: b.SlotRegion(round, i),
				Team1:  left.Winner,
				Team2:  right.Winner,
			}
			existing, ok := byID[want.GameID]
			if ok && existing.Team1 == want.Team1 && existing.Team2 == want.Team2 {
				continue
			}
			if ok && want.HasTeam(existing.Winner) {
				// The matchup changed but the recorded winner is still playing
				want.Winner = existing.Winner
			}
			repairs = append(repairs, want)
			byID[want.GameID] = want
		}
	}
	return repairs
}
