/* bot_test.go
 * Contains unit tests for bot.go functions
 */

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartsWith_ExactMatch(t *testing.T) {
	assert.True(t, startsWith("$help", "$help"))
}

func TestStartsWith_StartsWithSubstring(t *testing.T) {
	assert.True(t, startsWith("$set team1 team2", "$set"))
}

func TestStartsWith_DoesNotStartWith(t *testing.T) {
	assert.False(t, startsWith("please $help", "$help"))
}

func TestStartsWith_SubstringNotPresent(t *testing.T) {
	assert.False(t, startsWith("$help", "$teams"))
}

func TestStartsWith_CaseSensitive(t *testing.T) {
	assert.False(t, startsWith("$Help", "$help"))
}
