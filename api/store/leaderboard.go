/* leaderboard.go
 * Contains the methods for interacting with the leaderboard collection
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchLeaderboardFromDB returns the cached leaderboard from the db
// Preconditions: Receives receiver pointer for Store which contains the DB connection
// Postconditions: Returns the Leaderboard document, or an error if it occurs
func (s *Store) FetchLeaderboardFromDB() (Leaderboard, error) {
	var res Leaderboard
	err := s.Collections.Leaderboard.FindOne(context.TODO(), bson.D{}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Leaderboard{}, err
		}
		return Leaderboard{}, fmt.Errorf("failed to fetch leaderboard from database: %w", err)
	}
	return res, nil
}

// StoreLeaderboard updates the leaderboard stored in the DB
// Preconditions: Receives receiver pointer for Store and the Leaderboard value to be stored
// Postconditions: Updates the leaderboard collection in Mongo and returns nil, or an error if it occurs
func (s *Store) StoreLeaderboard(leaderboard Leaderboard) error {
	if len(leaderboard.Entries) == 0 {
		return fmt.Errorf("leaderboard is empty")
	}

	log.Println("updating leaderboard in db")
	filter := bson.D{}
	update := bson.D{{Key: "$set", Value: leaderboard}}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collections.Leaderboard.UpdateOne(context.TODO(), filter, update, opts)
	if err != nil {
		return fmt.Errorf("leaderboard update failed: %w", err)
	}
	return nil
}
