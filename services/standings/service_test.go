package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	league "github.com/wrestlepicks/league-sync/repos/league"
)

var testHistorical = map[string]map[string]int{
	"WrestleMania 40": {"Dan": 6, "Mike": 4},
	"SummerSlam 2024": {"Dan": 3},
}

func TestTotalPoints_ZeroForNewPlayer(t *testing.T) {
	player := league.Player{Name: "Newcomer"}

	total := totalPoints(testHistorical, player, nil)
	assert.Equal(t, 0, total, "no history and no correct picks must score zero")
}

func TestTotalPoints_HistoricalSum(t *testing.T) {
	player := league.Player{Name: "Dan"}

	total := totalPoints(testHistorical, player, []league.Event{})
	assert.Equal(t, 9, total, "historical tables sum across every event containing the player")

	total = totalPoints(testHistorical, league.Player{Name: "Mike"}, []league.Event{})
	assert.Equal(t, 4, total)
}

func TestTotalPoints_CorrectPickScoresOne(t *testing.T) {
	events := []league.Event{
		{
			ID:     "ev1",
			Name:   "Payback",
			Status: league.StatusCompleted,
			Matches: []league.Match{
				{ID: 1, Options: []string{"Roman", "Seth"}, Winner: "Roman"},
				{ID: 2, Options: []string{"Cody", "Gunther"}, Winner: "Gunther"},
			},
		},
	}
	player := league.Player{
		Name: "Newcomer",
		Picks: map[string]string{
			"ev1-1": "Roman", // correct
			"ev1-2": "Cody",  // wrong
		},
	}

	total := totalPoints(testHistorical, player, events)
	assert.Equal(t, 1, total)
}

func TestTotalPoints_OpenEventsNeverCount(t *testing.T) {
	// Even a recorded winner must not score while the event is open.
	events := []league.Event{
		{
			ID:     "ev1",
			Name:   "Payback",
			Status: league.StatusOpen,
			Matches: []league.Match{
				{ID: 1, Options: []string{"Roman", "Seth"}, Winner: "Roman"},
			},
		},
		{
			ID:     "ev2",
			Name:   "Backlash",
			Status: league.StatusUpcoming,
			Matches: []league.Match{
				{ID: 1, Options: []string{"Cody", "Gunther"}, Winner: "Cody"},
			},
		},
	}
	player := league.Player{
		Name: "Newcomer",
		Picks: map[string]string{
			"ev1-1": "Roman",
			"ev2-1": "Cody",
		},
	}

	assert.Equal(t, 0, totalPoints(testHistorical, player, events))
}

func TestTotalPoints_HistoricalEventNeverDoubleCounts(t *testing.T) {
	// A historical event re-entered live, with a different name casing,
	// must contribute nothing beyond its historical score.
	events := []league.Event{
		{
			ID:     "ev1",
			Name:   "WRESTLEMANIA 40",
			Status: league.StatusCompleted,
			Matches: []league.Match{
				{ID: 1, Options: []string{"Roman", "Cody"}, Winner: "Cody"},
			},
		},
	}
	player := league.Player{
		Name:  "Dan",
		Picks: map[string]string{"ev1-1": "Cody"},
	}

	assert.Equal(t, 9, totalPoints(testHistorical, player, events))
}

func TestTotalPoints_ToleratesMissingFields(t *testing.T) {
	events := []league.Event{
		{ID: "ev1", Name: "Payback", Status: league.StatusLive},
	}
	player := league.Player{Name: "Newcomer"}

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, totalPoints(testHistorical, player, events))
	})
}

func TestLiveEventCountsLikeCompleted(t *testing.T) {
	events := []league.Event{
		{
			ID:     "ev1",
			Name:   "Payback",
			Status: league.StatusLive,
			Matches: []league.Match{
				{ID: 1, Options: []string{"Roman", "Seth"}, Winner: "Seth"},
			},
		},
	}
	player := league.Player{
		Name:  "Newcomer",
		Picks: map[string]string{"ev1-1": "Seth"},
	}

	assert.Equal(t, 1, totalPoints(testHistorical, player, events))
}
