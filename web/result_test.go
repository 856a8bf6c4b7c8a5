/* result_test.go
 * Contains unit tests for the result webhook handler
 */

package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apiPkg "github.com/nick-merlino/ncaa-tournament-manager/api/api"
	"github.com/nick-merlino/ncaa-tournament-manager/api/bracket"
	"github.com/nick-merlino/ncaa-tournament-manager/api/shared"

	"github.com/stretchr/testify/assert"
)

func testServer(t *testing.T) (*Server, *apiPkg.MockStore) {
	t.Helper()
	regions := make([]shared.Region, 0, 4)
	for _, name := range []string{"East", "West", "South", "Midwest"} {
		teams := make([]shared.Team, 0, 16)
		for seed := 1; seed <= 16; seed++ {
			teams = append(teams, shared.Team{Name: fmt.Sprintf("%s %d", name, seed), Seed: seed})
		}
		regions = append(regions, shared.Region{Name: name, Teams: teams})
	}
	b, err := bracket.New(&bracket.Config{Regions: regions})
	assert.NoError(t, err)

	mockStore := apiPkg.NewMockStore()
	apiPtr := &apiPkg.API{
		Store:   mockStore,
		Bracket: b,
		Weights: shared.DefaultRoundWeights(),
	}
	assert.NoError(t, apiPtr.ImportBracket())
	return NewServer(apiPtr), mockStore
}

func postEvent(server *Server, event ResultEvent) *httptest.ResponseRecorder {
	body, _ := json.Marshal(event)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/result", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	server.ResultWebhookHandler(w, req)
	return w
}

func TestResultWebhookHandler_WrongMethod(t *testing.T) {
	server, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/webhooks/result", nil)
	w := httptest.NewRecorder()

	server.ResultWebhookHandler(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestResultWebhookHandler_InvalidJSON(t *testing.T) {
	server, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/result", bytes.NewBufferString("invalid json"))
	w := httptest.NewRecorder()

	server.ResultWebhookHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResultWebhookHandler_MissingFields(t *testing.T) {
	server, _ := testServer(t)

	assert.Equal(t, http.StatusBadRequest, postEvent(server, ResultEvent{GameID: 1}).Code)
	assert.Equal(t, http.StatusBadRequest, postEvent(server, ResultEvent{Winner: "East 1"}).Code)
}

func TestResultWebhookHandler_RecordsResult(t *testing.T) {
	server, mockStore := testServer(t)

	w := postEvent(server, ResultEvent{GameID: 1, Winner: "East 1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "East 1", mockStore.Games[1].Winner)
}

func TestResultWebhookHandler_InvalidWinner(t *testing.T) {
	server, mockStore := testServer(t)

	w := postEvent(server, ResultEvent{GameID: 1, Winner: "West 5"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, mockStore.Games[1].Winner)
}

func TestResultWebhookHandler_UnknownGame(t *testing.T) {
	server, _ := testServer(t)

	w := postEvent(server, ResultEvent{GameID: 99, Winner: "East 1"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestResultWebhookHandler_RepairsNextRound(t *testing.T) {
	server, mockStore := testServer(t)

	assert.Equal(t, http.StatusOK, postEvent(server, ResultEvent{GameID: 1, Winner: "East 1"}).Code)
	assert.Equal(t, http.StatusOK, postEvent(server, ResultEvent{GameID: 2, Winner: "East 9"}).Code)

	next, ok := mockStore.Games[33]
	assert.True(t, ok)
	assert.Equal(t, "East 1", next.Team1)
	assert.Equal(t, "East 9", next.Team2)
}
