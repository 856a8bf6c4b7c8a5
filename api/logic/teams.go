/* teams.go
 * Contains the logic for matching user supplied team names against the
 * bracket. Names arrive from chat messages, so matching is fuzzy.
 */

package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// CheckTeamNames resolves user supplied names against the bracket's teams.
// Preconditions: receives the user's raw picks and the list of valid team names
// Postconditions: returns the canonical names of the picks that matched and
// the raw inputs that matched nothing
func CheckTeamNames(pickNames []string, validTeams []string) ([]string, []string) {
	var matched []string
	var invalid []string

	// Match case insensitively, but return the canonical casing
	lookup := make(map[string]string, len(validTeams))
	lower := make([]string, 0, len(validTeams))
	for _, name := range validTeams {
		l := strings.ToLower(name)
		lookup[l] = name
		lower = append(lower, l)
	}

	for _, pick := range pickNames {
		lowerPick := strings.ToLower(strings.TrimSpace(pick))
		results := fuzzy.RankFind(lowerPick, lower)
		if len(results) == 0 {
			invalid = append(invalid, pick)
			continue
		}
		// Prefer an exact match when the fuzzy search returns several
		best := ""
		for i := range results {
			if results[i].Target == lowerPick {
				best = results[i].Target
				break
			}
		}
		if best == "" {
			best = results[0].Target
		}
		matched = append(matched, lookup[best])
	}
	return matched, invalid
}
