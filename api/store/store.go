/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into three files:
 * results, picks and leaderboard. Each of these files contain methods for interacting with that part of the
 * database
 */

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Results     *mongo.Collection
		Picks       *mongo.Collection
		Leaderboard *mongo.Collection
	}
}

// Function for initialising Store. Initialises the db connection and sets collection values. One database
// holds one tournament; a new pool starts with a fresh database name.
// Preconditions: Receives strings containing the dbName and mongoURI
// Postconditions: Sets collection values and returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Collections: struct {
			Results     *mongo.Collection
			Picks       *mongo.Collection
			Leaderboard *mongo.Collection
		}{
			Results:     db.Collection("tournament_results"),
			Picks:       db.Collection("user_picks"),
			Leaderboard: db.Collection("leaderboard"),
		},
	}, nil
}
