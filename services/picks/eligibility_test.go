package picks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrestlepicks/league-sync/pkg/pickkey"
	league "github.com/wrestlepicks/league-sync/repos/league"
)

func rumbleEvent() league.Event {
	return league.Event{
		ID:     "ev1",
		Name:   "Royal Rumble",
		Status: league.StatusOpen,
		Matches: []league.Match{
			{ID: 1, Title: "Men's Royal Rumble Match", Options: []string{"Roman", "Seth", "OTHER"}},
			{ID: 2, Title: "Undisputed Championship", Options: []string{"Cody", "Gunther"}},
		},
	}
}

func playerWithPick(name, eventID string, matchID int, option string) league.Player {
	return league.Player{
		Name:  name,
		Picks: map[string]string{pickkey.Key(eventID, matchID): option},
	}
}

func TestIsExclusive(t *testing.T) {
	event := rumbleEvent()

	assert.True(t, IsExclusive(event, event.Matches[0]))
	assert.False(t, IsExclusive(event, event.Matches[1]), "an ordinary title match is never exclusive")

	// The same match title outside a rumble event is not exclusive.
	plain := event
	plain.Name = "Payback"
	assert.False(t, IsExclusive(plain, event.Matches[0]))
}

func TestIsExclusive_ApostropheGlyphs(t *testing.T) {
	event := rumbleEvent()

	for _, title := range []string{
		"Men’s Royal Rumble Match",
		"MEN'S ROYAL RUMBLE MATCH",
		"Womenʼs Royal Rumble Match",
	} {
		assert.True(t, IsExclusive(event, league.Match{ID: 9, Title: title}), title)
	}
}

func TestExclusivePickScenario(t *testing.T) {
	event := rumbleEvent()
	match := event.Matches[0]
	playerA := playerWithPick("Player A", "ev1", 1, "Roman")
	playerB := league.Player{Name: "Player B", Picks: map[string]string{}}
	players := []league.Player{playerA, playerB}

	// Player B attempting Roman is rejected citing Player A.
	holder, blocked := Blocker(players, event, match, "Roman", "Player B")
	assert.True(t, blocked)
	assert.Equal(t, "Player A", holder)

	// OTHER is exempt and never blocked.
	_, blocked = Blocker(players, event, match, "OTHER", "Player B")
	assert.False(t, blocked)

	// Player A re-picking their own existing selection is never blocked.
	_, blocked = Blocker(players, event, match, "Roman", "Player A")
	assert.False(t, blocked)

	// Seth is still free.
	_, blocked = Blocker(players, event, match, "Seth", "Player B")
	assert.False(t, blocked)
}

func TestExemptOptionCaseInsensitive(t *testing.T) {
	event := rumbleEvent()
	match := event.Matches[0]
	players := []league.Player{playerWithPick("Player A", "ev1", 1, "other")}

	taken := TakenOptions(players, "ev1", 1, "")
	assert.Empty(t, taken, "a lowercase exempt pick must not count as a holder")

	_, blocked := Blocker(players, event, match, "other", "Player B")
	assert.False(t, blocked)
}

func TestTakenOptions_LastHolderWins(t *testing.T) {
	// Nothing in the data model prevents two holders of one option; the
	// player encountered last is reported as the holder.
	players := []league.Player{
		playerWithPick("Player A", "ev1", 1, "Roman"),
		playerWithPick("Player B", "ev1", 1, "Roman"),
	}

	taken := TakenOptions(players, "ev1", 1, "")
	assert.Equal(t, "Player B", taken["Roman"])
}

func TestTakenOptions_ExcludesPlayer(t *testing.T) {
	players := []league.Player{
		playerWithPick("Player A", "ev1", 1, "Roman"),
		playerWithPick("Player B", "ev1", 1, "Seth"),
	}

	taken := TakenOptions(players, "ev1", 1, "Player A")
	assert.NotContains(t, taken, "Roman")
	assert.Equal(t, "Player B", taken["Seth"])
}

func TestOtherPickers(t *testing.T) {
	players := []league.Player{
		playerWithPick("Player A", "ev1", 1, "OTHER"),
		playerWithPick("Player B", "ev1", 1, "OTHER"),
		playerWithPick("Player C", "ev1", 1, "Roman"),
	}

	names := OtherPickers(players, "ev1", 1, "Player B")
	assert.Equal(t, []string{"Player A"}, names)
}

func TestNonExclusiveMatchNeverBlocks(t *testing.T) {
	event := rumbleEvent()
	match := event.Matches[1]
	players := []league.Player{playerWithPick("Player A", "ev1", 2, "Cody")}

	_, blocked := Blocker(players, event, match, "Cody", "Player B")
	assert.False(t, blocked, "cross-player blocking only applies to exclusive matches")
}
