/* picks.go
 * Contains the methods for interacting with the user_picks collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoreUserPicks stores user picks in the db
// Preconditions: Receives a string containing the userID, and PickSet containing the user's picks
// Postconditions: Stores or updates the user's picks stored in the db, or returns an error if the
// operation was unsuccessful
func (s *Store) StoreUserPicks(userID string, picks PickSet) error {
	// Attempt to find an existing document
	var result PickSet
	err := s.Collections.Picks.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&result)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing picks failed: %w", err)
	}

	// The user currently does not have picks stored so we create a new document
	if notFound {
		if _, err := s.Collections.Picks.InsertOne(context.TODO(), picks); err != nil {
			return fmt.Errorf("failed to insert new user picks: %w", err)
		}
		return nil
	}

	// Else update the user's existing picks
	filter := bson.M{"userid": userID}
	update := bson.M{"$set": bson.M{"username": picks.Username, "picks": picks.Picks}}
	if _, err := s.Collections.Picks.UpdateOne(context.TODO(), filter, update); err != nil {
		return fmt.Errorf("failed to update existing user picks: %w", err)
	}
	return nil
}

// GetUserPicks does DB lookup and gets the picks for a user
// Preconditions: Receives a string containing the userID
// Postconditions: Returns a user's picks if they exist, or an error if it occurs
func (s *Store) GetUserPicks(userID string) (PickSet, error) {
	var result PickSet
	err := s.Collections.Picks.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PickSet{}, err
		}
		return PickSet{}, fmt.Errorf("error fetching picks from db: %w", err)
	}
	return result, nil
}

// GetAllUserPicks does DB lookup and gets the picks for every participant. Used in leaderboard
// calculations.
// Postconditions: Returns slice of PickSet or an error if it occurs
func (s *Store) GetAllUserPicks() ([]PickSet, error) {
	cursor, err := s.Collections.Picks.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching picks from db: %w", err)
	}

	var results []PickSet
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of picks: %w", err)
	}
	return results, nil
}
