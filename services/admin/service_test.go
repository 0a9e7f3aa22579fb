package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"

	league "github.com/wrestlepicks/league-sync/repos/league"
)

func TestDiscardBlanks(t *testing.T) {
	options := discardBlanks([]string{"Roman", "", "  ", "Seth", "\t"})
	assert.Equal(t, []string{"Roman", "Seth"}, options)
}

func TestNextMatchID(t *testing.T) {
	assert.Equal(t, 1, nextMatchID(nil))
	assert.Equal(t, 4, nextMatchID([]league.Match{{ID: 3}, {ID: 1}}))
}

func TestAddMatch_RejectsSingleOption(t *testing.T) {
	// Validation runs before any store access, so a zero service is enough.
	service := &AdminService{}

	_, err := service.AddMatch(context.Background(), "ev1", "Main Event", []string{"Roman", "", "  "})
	assert.ErrorIs(t, err, ErrInvalidMatch)
}

func TestAddMatch_RejectsEmptyTitle(t *testing.T) {
	service := &AdminService{}

	_, err := service.AddMatch(context.Background(), "ev1", "   ", []string{"Roman", "Seth"})
	assert.ErrorIs(t, err, ErrInvalidMatch)
}

func TestUpdateEvent_RejectsUnknownStatus(t *testing.T) {
	service := &AdminService{}

	err := service.UpdateEvent(context.Background(), "ev1", UpdateEventRequest{
		Status: pointer.String("cancelled"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateEvent_NoFieldsIsANoOp(t *testing.T) {
	service := &AdminService{}

	err := service.UpdateEvent(context.Background(), "ev1", UpdateEventRequest{})
	assert.Nil(t, err)
}

func TestCreatePlayer_RequiresName(t *testing.T) {
	service := &AdminService{}

	_, err := service.CreatePlayer(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrPlayerNameMissing)
}

func TestEventPickKeys(t *testing.T) {
	player := league.Player{
		Name: "Dan",
		Picks: map[string]string{
			"ev1-1": "Roman",
			"ev1-2": "Seth",
			"ev2-1": "Cody",
		},
	}

	keys := eventPickKeys(player, "ev1")
	assert.ElementsMatch(t, []string{"ev1-1", "ev1-2"}, keys, "other events' picks must stay untouched")

	assert.Empty(t, eventPickKeys(league.Player{Name: "Dan"}, "ev1"))
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{
		league.StatusUpcoming, league.StatusOpen, league.StatusLive, league.StatusCompleted,
	} {
		assert.True(t, validStatus(status), status)
	}
	assert.False(t, validStatus("finished"))
}
