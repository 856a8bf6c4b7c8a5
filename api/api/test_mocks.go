/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 */

package api

import (
	"context"
	"fmt"
	"sort"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
	"github.com/nick-merlino/ncaa-tournament-manager/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Games       map[int]shared.Game
	Picks       map[string]store.PickSet
	Leaderboard *store.Leaderboard

	// Error injection for testing error paths
	FetchTournamentResultsError error
	ImportFirstRoundError       error
	RecordGameResultError       error
	StoreUserPicksError         error
	GetUserPicksError           error
	GetAllUserPicksError        error
	FetchLeaderboardError       error
	StoreLeaderboardError       error
}

// NewMockStore creates a new MockStore with empty storage
func NewMockStore() *MockStore {
	return &MockStore{
		Games: make(map[int]shared.Game),
		Picks: make(map[string]store.PickSet),
	}
}

// FetchTournamentResults mock implementation
func (m *MockStore) FetchTournamentResults() ([]shared.Game, error) {
	if m.FetchTournamentResultsError != nil {
		return nil, m.FetchTournamentResultsError
	}
	games := make([]shared.Game, 0, len(m.Games))
	for _, g := range m.Games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].GameID < games[j].GameID })
	return games, nil
}

// ImportFirstRound mock implementation
func (m *MockStore) ImportFirstRound(games []shared.Game) error {
	if m.ImportFirstRoundError != nil {
		return m.ImportFirstRoundError
	}
	if len(m.Games) > 0 {
		return nil
	}
	for _, g := range games {
		m.Games[g.GameID] = g
	}
	return nil
}

// RecordGameResult mock implementation, runs the same repair pass as the real store
func (m *MockStore) RecordGameResult(b *bracket.Bracket, gameID int, winner string) error {
	if m.RecordGameResultError != nil {
		return m.RecordGameResultError
	}
	game, ok := m.Games[gameID]
	if !ok {
		return fmt.Errorf("no game with id %d", gameID)
	}
	if !game.HasTeam(winner) {
		return fmt.Errorf("'%s' is not playing in game %d (%s vs %s)", winner, gameID, game.Team1, game.Team2)
	}
	game.Winner = winner
	m.Games[gameID] = game

	games, _ := m.FetchTournamentResults()
	for _, g := range store.PlanRepairs(b, games) {
		m.Games[g.GameID] = g
	}
	return nil
}

// StoreUserPicks mock implementation
func (m *MockStore) StoreUserPicks(userID string, picks store.PickSet) error {
	if m.StoreUserPicksError != nil {
		return m.StoreUserPicksError
	}
	m.Picks[userID] = picks
	return nil
}

// GetUserPicks mock implementation
func (m *MockStore) GetUserPicks(userID string) (store.PickSet, error) {
	if m.GetUserPicksError != nil {
		return store.PickSet{}, m.GetUserPicksError
	}
	picks, ok := m.Picks[userID]
	if !ok {
		return store.PickSet{}, mongo.ErrNoDocuments
	}
	return picks, nil
}

// GetAllUserPicks mock implementation
func (m *MockStore) GetAllUserPicks() ([]store.PickSet, error) {
	if m.GetAllUserPicksError != nil {
		return nil, m.GetAllUserPicksError
	}
	ids := make([]string, 0, len(m.Picks))
	for id := range m.Picks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	picks := make([]store.PickSet, 0, len(ids))
	for _, id := range ids {
		picks = append(picks, m.Picks[id])
	}
	return picks, nil
}

// FetchLeaderboardFromDB mock implementation
func (m *MockStore) FetchLeaderboardFromDB() (store.Leaderboard, error) {
	if m.FetchLeaderboardError != nil {
		return store.Leaderboard{}, m.FetchLeaderboardError
	}
	if m.Leaderboard == nil {
		return store.Leaderboard{}, mongo.ErrNoDocuments
	}
	return *m.Leaderboard, nil
}

// StoreLeaderboard mock implementation
func (m *MockStore) StoreLeaderboard(leaderboard store.Leaderboard) error {
	if m.StoreLeaderboardError != nil {
		return m.StoreLeaderboardError
	}
	m.Leaderboard = &leaderboard
	return nil
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// GetDatabase returns the mock database instance
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "test_db"}
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements the store interface
var _ store.Interface = (*MockStore)(nil)
