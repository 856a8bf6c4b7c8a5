/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	FetchTournamentResults() ([]shared.Game, error)
	ImportFirstRound(games []shared.Game) error
	RecordGameResult(b *bracket.Bracket, gameID int, winner string) error
	StoreUserPicks(userID string, picks PickSet) error
	GetUserPicks(userID string) (PickSet, error)
	GetAllUserPicks() ([]PickSet, error)
	FetchLeaderboardFromDB() (Leaderboard, error)
	StoreLeaderboard(leaderboard Leaderboard) error

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
