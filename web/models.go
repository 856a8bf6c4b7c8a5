/* models.go
 * Contains the configuration and server structs for the webhook endpoint
 */

package web

import (
	"github.com/nick-merlino/ncaa-tournament-manager/api/api"

	"golang.org/x/time/rate"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that handles webhook requests
type Server struct {
	api *api.API
	// Leaderboard recalculation is throttled: a burst of results, e.g. a whole round entered at
	// once, triggers at most one refresh per interval
	limiter *rate.Limiter
}

// NewServer creates a Server around the api with the refresh throttle in place
func NewServer(apiPtr *api.API) *Server {
	return &Server{
		api:     apiPtr,
		limiter: rate.NewLimiter(rate.Limit(0.2), 1), // at most one refresh every five seconds
	}
}
