/* models.go
 * This file contains the structs that relate to DB objects
 */

package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PickSet is one participant's set of picked teams for the tournament
type PickSet struct {
	Id       primitive.ObjectID `bson:"_id,omitempty"`
	UserId   string             `bson:"userid,omitempty"`
	Username string             `bson:"username,omitempty"`
	Picks    []string           `bson:"picks,omitempty"`
}

// LeaderboardEntry holds one participant's standing. Participants with equal
// current scores share a rank. When a participant's stored picks could not be
// scored, Unavailable carries the cause and the score fields stay zero.
type LeaderboardEntry struct {
	UserId      string  `bson:"userid"`
	Username    string  `bson:"username"`
	Rank        int     `bson:"rank"`
	Current     float64 `bson:"current"`
	WorstCase   float64 `bson:"worst_case"`
	BestCase    float64 `bson:"best_case"`
	Unavailable string  `bson:"unavailable,omitempty"`
}

// Leaderboard is the cached standings document for the tournament
type Leaderboard struct {
	CurrentRound string             `bson:"current_round"`
	Entries      []LeaderboardEntry `bson:"entries"`
}
