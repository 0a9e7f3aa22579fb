package picks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	league "github.com/wrestlepicks/league-sync/repos/league"
)

func TestMissingPickCount(t *testing.T) {
	event := league.Event{
		ID: "ev1",
		Matches: []league.Match{
			{ID: 1}, {ID: 2}, {ID: 3},
		},
	}
	player := league.Player{
		Name: "Dan",
		Picks: map[string]string{
			"ev1-1": "Roman",
			"ev1-2": "Seth",
			"ev2-1": "Cody", // a different event's pick never counts
		},
	}

	assert.Equal(t, 1, MissingPickCount(event, player))

	player.Picks["ev1-3"] = "Gunther"
	assert.Equal(t, 0, MissingPickCount(event, player))
}

func TestMissingPickCount_NoMatches(t *testing.T) {
	event := league.Event{ID: "ev1"}
	player := league.Player{Name: "Dan"}

	assert.Equal(t, 0, MissingPickCount(event, player))
}

func TestMissingPickCount_NilPicks(t *testing.T) {
	event := league.Event{ID: "ev1", Matches: []league.Match{{ID: 1}}}
	player := league.Player{Name: "Dan"}

	assert.Equal(t, 1, MissingPickCount(event, player))
}

func TestOptionTakenErrorMessage(t *testing.T) {
	err := &OptionTakenError{Option: "Roman", Holder: "Player A"}
	assert.Equal(t, "Roman already taken by Player A", err.Error())
}

type fakeSnapshots struct {
	events  []league.Event
	players []league.Player
}

func (f *fakeSnapshots) Event(eventID string) (*league.Event, bool) {
	for i := range f.events {
		if f.events[i].ID == eventID {
			return &f.events[i], true
		}
	}
	return nil, false
}

func (f *fakeSnapshots) Players() []league.Player {
	return f.players
}

func rumbleSnapshots(status string) *fakeSnapshots {
	return &fakeSnapshots{
		events: []league.Event{
			{
				ID:     "rr25",
				Name:   "Royal Rumble 2025",
				Status: status,
				Matches: []league.Match{
					{
						ID:      1,
						Title:   "Men's Royal Rumble Match",
						Options: []string{"Roman", "Seth", "OTHER"},
					},
				},
			},
		},
		players: []league.Player{
			{
				ID:    "p1",
				Name:  "Player A",
				Picks: map[string]string{"rr25-1": "Roman"},
			},
		},
	}
}

func TestSubmitPick_RequiresPlayer(t *testing.T) {
	service := &PicksService{}
	err := service.SubmitPick(context.Background(), "ev1", 1, "Roman", "")
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestLockInPicks_RequiresPlayer(t *testing.T) {
	service := &PicksService{}
	err := service.LockInPicks(context.Background(), "ev1", "")
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestSubmitPick_UnknownEvent(t *testing.T) {
	service := NewPicksService(nil, rumbleSnapshots(league.StatusOpen))

	err := service.SubmitPick(context.Background(), "nope", 1, "Roman", "Player B")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSubmitPick_RejectsClosedEvent(t *testing.T) {
	service := NewPicksService(nil, rumbleSnapshots(league.StatusLive))

	err := service.SubmitPick(context.Background(), "rr25", 1, "Seth", "Player B")
	assert.ErrorIs(t, err, ErrPicksClosed)
}

func TestSubmitPick_UnknownMatch(t *testing.T) {
	service := NewPicksService(nil, rumbleSnapshots(league.StatusOpen))

	err := service.SubmitPick(context.Background(), "rr25", 9, "Seth", "Player B")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSubmitPick_UnknownOption(t *testing.T) {
	service := NewPicksService(nil, rumbleSnapshots(league.StatusOpen))

	err := service.SubmitPick(context.Background(), "rr25", 1, "Hulk", "Player B")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestSubmitPick_ExclusiveOptionTaken(t *testing.T) {
	service := NewPicksService(nil, rumbleSnapshots(league.StatusOpen))

	err := service.SubmitPick(context.Background(), "rr25", 1, "Roman", "Player B")

	var taken *OptionTakenError
	assert.ErrorAs(t, err, &taken)
	assert.Equal(t, "Roman", taken.Option)
	assert.Equal(t, "Player A", taken.Holder)
}
