/* test_helpers.go
 * Contains test helper functions for store package tests
 */

package store

import (
	"context"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_tournament", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSamplePickSet creates sample PickSet data for testing.
func CreateSamplePickSet(userID, username string, picks []string) PickSet {
	return PickSet{
		UserId:   userID,
		Username: username,
		Picks:    picks,
	}
}
