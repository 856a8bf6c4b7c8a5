/* result.go
 * Contains the webhook endpoint that records game results. Scorekeepers (or an upstream feed) POST the
 * winner of a finished game here; the store repairs later rounds and the leaderboard is recomputed in
 * the background.
 */

package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
)

// ResultEvent is the webhook payload for one finished game
type ResultEvent struct {
	GameID int    `json:"game_id"`
	Winner string `json:"winner"`
}

// ResultWebhookHandler HTTP endpoint that receives a game result, records it and kicks off the
// leaderboard refresh
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Records the result synchronously so the response reflects validation, then refreshes
// the leaderboard asynchronously
func (s *Server) ResultWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var event ResultEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Println("failed to decode webhook:", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if event.GameID == 0 || event.Winner == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := s.api.RecordResult(event.GameID, event.Winner); err != nil {
		log.Println("failed to record result:", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	log.Printf("recorded result game=%d winner=%s\n", event.GameID, event.Winner)

	// Kick async recalculation, throttled by the limiter
	go func() {
		if err := s.limiter.Wait(context.Background()); err != nil {
			return
		}
		if err := s.api.RefreshLeaderboard(); err != nil {
			log.Println("RefreshLeaderboard failed:", err)
		}
	}()

	w.WriteHeader(http.StatusOK)
}
