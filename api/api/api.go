/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for bracket and logic.
 */

package api

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/logic"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"
	"github.com/nick-merlino/ncaa-tournament-manager/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// API provides methods for interacting with the tournament pool data layer
type API struct {
	Store   store.Interface
	Bracket *bracket.Bracket
	Weights shared.RoundWeights
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, bracketPath string) (*API, error) {
	if dbName == "" || bracketPath == "" {
		return nil, fmt.Errorf("dbName and bracketPath are required")
	}

	cfg, err := bracket.LoadConfig(bracketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load bracket: %w", err)
	}
	b, err := bracket.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build bracket: %w", err)
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:   s,
		Bracket: b,
		Weights: cfg.Weights(),
	}, nil
}

// ImportBracket seeds the results collection with the Round of 64 games. Safe to call on every start up,
// it does nothing once games exist.
// Preconditions: Receives receiver pointer to api
// Postconditions: Seeds the results collection and returns nil, or returns an error if it occurs
func (a *API) ImportBracket() error {
	return a.Store.ImportFirstRound(a.Bracket.FirstRoundGames())
}

// SetUserPicks contains the logic to set a user's picks in the DB.
// It receives a user struct that contains userID and userName, and a list of teams the user wishes to pick.
// It updates the user's picks in the database, or returns an error if it occurs.
func (a *API) SetUserPicks(user shared.User, inputTeams []string) error {
	if len(inputTeams) == 0 {
		return fmt.Errorf("no teams provided")
	}

	// Fix formatting on input teams
	for i := range inputTeams {
		inputTeams[i] = strings.ReplaceAll(inputTeams[i], "\"", "")
		inputTeams[i] = strings.ReplaceAll(inputTeams[i], "“", "")
		inputTeams[i] = strings.ReplaceAll(inputTeams[i], "”", "")
	}

	// Validate input teams
	teams, invalidTeams := logic.CheckTeamNames(inputTeams, a.Bracket.Teams())
	if len(invalidTeams) > 0 {
		var str strings.Builder
		str.WriteString("the following team names are invalid:")
		for i := range invalidTeams {
			str.WriteString(fmt.Sprintf(" '%s'", invalidTeams[i]))
		}
		return errors.New(str.String())
	}

	// Check for unique team names
	seen := make(map[string]bool)
	for _, team := range teams {
		if seen[team] {
			return fmt.Errorf("'%s' entered multiple times, stored picks were not updated", team)
		}
		seen[team] = true
	}

	picks := store.PickSet{
		UserId:   user.UserID,
		Username: user.Username,
		Picks:    teams,
	}
	if err := a.Store.StoreUserPicks(user.UserID, picks); err != nil {
		return err
	}
	return nil
}

// CheckPicks contains the logic required to check a user's picks.
// It receives a user struct and receiver pointer to api.
// It returns a string containing the status of each of the user's picks and their score bounds, or an
// error if it occurs.
func (a *API) CheckPicks(user shared.User) (string, error) {
	// Fetch picks from db
	doc, err := a.Store.GetUserPicks(user.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("no picks stored for %s", user.Username)
		}
		return "", err
	}

	games, err := a.Store.FetchTournamentResults()
	if err != nil {
		return "", err
	}

	scenario, err := logic.SimulateScenario(a.Bracket, games, doc.Picks, a.Weights)
	if err != nil {
		return "", err
	}

	scorable := logic.ScorableResults(games)
	state := logic.ResolveRoundState(games)
	reportAnomalies(state)

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s's picks:\n", doc.Username))
	for _, team := range doc.Picks {
		status := logic.PickStatus(team, scorable, state.CurrentRound)
		points := logic.PickPoints(team, scorable, a.Weights)
		response.WriteString(fmt.Sprintf("- %s: %s (%s)\n", team, status, formatPoints(points)))
	}
	response.WriteString(fmt.Sprintf("Score: %s | guaranteed %s | potential %s\n",
		formatPoints(scenario.Current), formatPoints(scenario.WorstCase), formatPoints(scenario.BestCase)))
	return response.String(), nil
}

// RecordResult records the winner of a game and rebuilds any dependent games above it
// Preconditions: Receives the game id and winning team name
// Postconditions: Updates the results collection, or returns an error if it occurs
func (a *API) RecordResult(gameID int, winner string) error {
	return a.Store.RecordGameResult(a.Bracket, gameID, winner)
}

// GetCurrentRound reports the round the tournament is currently in
func (a *API) GetCurrentRound() (string, error) {
	games, err := a.Store.FetchTournamentResults()
	if err != nil {
		return "", err
	}
	state := logic.ResolveRoundState(games)
	reportAnomalies(state)
	return state.CurrentRound, nil
}

// reportAnomalies logs every inconsistency the resolver found in the recorded
// games, so the malformed records can be corrected upstream. Anomalous games
// never count towards any score.
func reportAnomalies(state logic.RoundState) {
	for _, anomaly := range state.Anomalies {
		log.Printf("inconsistent result: %s", anomaly)
	}
}

// RefreshLeaderboard recomputes every participant's scenario and stores the leaderboard in the DB.
// Preconditions: Receives receiver pointer to api
// Postconditions: Updates the leaderboard in the DB and returns nil, or returns an error if it occurs
func (a *API) RefreshLeaderboard() error {
	leaderboard, err := a.buildLeaderboard()
	if err != nil {
		return err
	}
	if len(leaderboard.Entries) == 0 {
		// Nothing to store until at least one participant has picks
		return nil
	}
	return a.Store.StoreLeaderboard(leaderboard)
}

// buildLeaderboard computes the standings from the recorded games and every participant's picks.
// Participants are ordered by current score; equal scores share a rank.
func (a *API) buildLeaderboard() (store.Leaderboard, error) {
	games, err := a.Store.FetchTournamentResults()
	if err != nil {
		return store.Leaderboard{}, err
	}

	picks, err := a.Store.GetAllUserPicks()
	if err != nil {
		return store.Leaderboard{}, err
	}

	state := logic.ResolveRoundState(games)
	reportAnomalies(state)
	leaderboard := store.Leaderboard{CurrentRound: state.CurrentRound}

	// Each participant's scenario is computed in isolation: bad pick data in
	// one stored document marks only that row unavailable, the rest are still
	// computed and ranked
	for _, p := range picks {
		entry := store.LeaderboardEntry{UserId: p.UserId, Username: p.Username}
		scenario, err := logic.SimulateScenario(a.Bracket, games, p.Picks, a.Weights)
		if err != nil {
			log.Printf("could not compute %s's scenario: %s", p.Username, err)
			entry.Unavailable = err.Error()
		} else {
			entry.Current = scenario.Current
			entry.WorstCase = scenario.WorstCase
			entry.BestCase = scenario.BestCase
		}
		leaderboard.Entries = append(leaderboard.Entries, entry)
	}

	// Ranking is by banked score only: a participant who can no longer win can
	// sit above one who still can, the worst/best columns carry that instead
	sort.SliceStable(leaderboard.Entries, func(i, j int) bool {
		return leaderboard.Entries[i].Current > leaderboard.Entries[j].Current
	})
	for i := range leaderboard.Entries {
		if i > 0 && leaderboard.Entries[i].Current == leaderboard.Entries[i-1].Current {
			leaderboard.Entries[i].Rank = leaderboard.Entries[i-1].Rank
			continue
		}
		leaderboard.Entries[i].Rank = i + 1
	}
	return leaderboard, nil
}

// GetStandings fetches the leaderboard from the db and generates a response string
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns a string with the current standings of the pool
func (a *API) GetStandings() (string, error) {
	leaderboard, err := a.Store.FetchLeaderboardFromDB()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("no leaderboard yet, record a result or refresh first")
		}
		return "", err
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Standings (%s):\n", leaderboard.CurrentRound))
	for _, entry := range leaderboard.Entries {
		if entry.Unavailable != "" {
			response.WriteString(fmt.Sprintf("%d. %s: unavailable (%s)\n", entry.Rank, entry.Username, entry.Unavailable))
			continue
		}
		response.WriteString(fmt.Sprintf("%d. %s: %s\n", entry.Rank, entry.Username, formatPoints(entry.Current)))
	}
	return response.String(), nil
}

// GetScenarios recomputes every participant's bounds and generates a response string showing, per
// participant, their guaranteed and potential final scores
func (a *API) GetScenarios() (string, error) {
	leaderboard, err := a.buildLeaderboard()
	if err != nil {
		return "", err
	}
	if len(leaderboard.Entries) == 0 {
		return "", fmt.Errorf("no picks stored yet")
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Scenarios (%s):\n", leaderboard.CurrentRound))
	for _, entry := range leaderboard.Entries {
		if entry.Unavailable != "" {
			response.WriteString(fmt.Sprintf("%d. %s: unavailable (%s)\n", entry.Rank, entry.Username, entry.Unavailable))
			continue
		}
		response.WriteString(fmt.Sprintf("%d. %s: %s | guaranteed %s | potential %s\n",
			entry.Rank, entry.Username, formatPoints(entry.Current),
			formatPoints(entry.WorstCase), formatPoints(entry.BestCase)))
	}
	return response.String(), nil
}

// GetUpsets generates a response string listing the decided games won by the worse seeded team
func (a *API) GetUpsets() (string, error) {
	games, err := a.Store.FetchTournamentResults()
	if err != nil {
		return "", err
	}

	upsets := logic.Upsets(a.Bracket, games)
	if len(upsets) == 0 {
		return "No upsets yet\n", nil
	}

	var response strings.Builder
	response.WriteString("Upsets so far:\n")
	for _, u := range upsets {
		response.WriteString(fmt.Sprintf("- (%s) %d %s over %d %s\n", u.Round, u.WinnerSeed, u.Winner, u.LoserSeed, u.Loser))
	}
	return response.String(), nil
}

// GetDetails gets the following information about the tournament: name, current round, team count and
// participant count.
// It returns a string slice with the contents attribute : value containing the information listed above.
func (a *API) GetDetails() ([]string, error) {
	round, err := a.GetCurrentRound()
	if err != nil {
		return nil, err
	}
	picks, err := a.Store.GetAllUserPicks()
	if err != nil {
		return nil, err
	}

	var values []string
	values = append(values, fmt.Sprintf("Tournament Name: %s", a.Store.GetDatabase().Name()))
	values = append(values, fmt.Sprintf("Current Round: %s", round))
	values = append(values, fmt.Sprintf("Teams: %d", len(a.Bracket.Teams())))
	values = append(values, fmt.Sprintf("Participants: %d", len(picks)))
	return values, nil
}

// GetTeams gets a list of all team names in the bracket.
// It returns a string slice containing every team in slot order.
func (a *API) GetTeams() ([]string, error) {
	return a.Bracket.Teams(), nil
}

// formatPoints renders a score without a trailing .0 for whole values
func formatPoints(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d pts", int64(v))
	}
	return fmt.Sprintf("%.1f pts", v)
}
