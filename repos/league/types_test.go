package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventNormalize(t *testing.T) {
	event := Event{ID: "ev1", Name: "Payback"}
	event.Normalize()

	assert.NotNil(t, event.Matches)
	assert.NotNil(t, event.SubmittedPlayers)
	assert.Empty(t, event.Matches)
}

func TestPlayerNormalize(t *testing.T) {
	player := Player{ID: "p1", Name: "Dan"}
	player.Normalize()

	assert.NotNil(t, player.Picks)
	// A normalized player can always be read without a nil check.
	_, ok := player.Picks["ev1-1"]
	assert.False(t, ok)
}

func TestFindMatch(t *testing.T) {
	event := Event{
		ID: "ev1",
		Matches: []Match{
			{ID: 1, Title: "Opener"},
			{ID: 2, Title: "Main Event"},
		},
	}

	match, ok := event.FindMatch(2)
	assert.True(t, ok)
	assert.Equal(t, "Main Event", match.Title)

	_, ok = event.FindMatch(3)
	assert.False(t, ok)
}

func TestHasSubmitted(t *testing.T) {
	event := Event{SubmittedPlayers: []string{"Dan", "Mike"}}

	assert.True(t, event.HasSubmitted("Mike"))
	assert.False(t, event.HasSubmitted("mike"), "submitted players are matched by exact display name")
	assert.False(t, event.HasSubmitted("Joey"))
}
