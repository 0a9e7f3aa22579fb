package picks

import (
	"context"
	"errors"
	"fmt"

	"github.com/wrestlepicks/league-sync/pkg/pickkey"
	league "github.com/wrestlepicks/league-sync/repos/league"
)

var (
	ErrNoPlayer      = errors.New("no player selected")
	ErrEventNotFound = errors.New("event not found")
	ErrMatchNotFound = errors.New("match not found")
	ErrUnknownOption = errors.New("option is not part of the match")
	ErrPicksClosed   = errors.New("picks are not open for this event")
	ErrMissingPicks  = errors.New("missing pick for at least one match")
)

// OptionTakenError reports an exclusive-pick collision and who caused it.
type OptionTakenError struct {
	Option string
	Holder string
}

func (e *OptionTakenError) Error() string {
	return fmt.Sprintf("%s already taken by %s", e.Option, e.Holder)
}

// Snapshots is the locally cached view of the league collections the
// engines read. Satisfied by the sync service; injectable so the
// operations are testable without a real remote store.
type Snapshots interface {
	Event(eventID string) (*league.Event, bool)
	Players() []league.Player
}

type PicksService struct {
	leagueService *league.Service
	snapshots     Snapshots
}

func NewPicksService(leagueService *league.Service, snapshots Snapshots) *PicksService {
	return &PicksService{
		leagueService: leagueService,
		snapshots:     snapshots,
	}
}

// SubmitPick records one pick for the player. Eligibility is checked
// against the locally cached view of other players' picks: two players
// submitting the same exclusive option within one synchronization window
// can both succeed. That gap is part of the contract, not a bug.
func (s *PicksService) SubmitPick(ctx context.Context, eventID string, matchID int, option, playerName string) error {
	if playerName == "" {
		return ErrNoPlayer
	}

	event, ok := s.snapshots.Event(eventID)
	if !ok {
		return ErrEventNotFound
	}
	if event.Status != league.StatusOpen {
		return ErrPicksClosed
	}

	match, ok := event.FindMatch(matchID)
	if !ok {
		return ErrMatchNotFound
	}
	if !containsOption(match.Options, option) {
		return ErrUnknownOption
	}

	if holder, blocked := Blocker(s.snapshots.Players(), *event, *match, option, playerName); blocked {
		return &OptionTakenError{Option: option, Holder: holder}
	}

	player, err := s.leagueService.FindPlayerByName(ctx, playerName)
	if err != nil {
		return err
	}
	return s.leagueService.SetPick(ctx, player.ID, pickkey.Key(eventID, matchID), option)
}

// LockInPicks finalizes the player's picks for the event. Rejected while
// any match is missing a pick; otherwise idempotent.
func (s *PicksService) LockInPicks(ctx context.Context, eventID, playerName string) error {
	if playerName == "" {
		return ErrNoPlayer
	}

	event, ok := s.snapshots.Event(eventID)
	if !ok {
		return ErrEventNotFound
	}

	player, err := s.leagueService.FindPlayerByName(ctx, playerName)
	if err != nil {
		return err
	}

	if MissingPickCount(*event, *player) > 0 {
		return ErrMissingPicks
	}

	return s.leagueService.AddSubmittedPlayer(ctx, eventID, playerName)
}

// MissingPickCount counts the matches of the event the player has not
// picked yet. An event without matches never blocks a lock-in.
func MissingPickCount(event league.Event, player league.Player) int {
	if len(event.Matches) == 0 {
		return 0
	}

	picked := 0
	for key := range player.Picks {
		if pickkey.BelongsTo(key, event.ID) {
			picked++
		}
	}

	missing := len(event.Matches) - picked
	if missing < 0 {
		return 0
	}
	return missing
}

// Availability describes the current state of an exclusive match for one
// player.
type Availability struct {
	Exclusive    bool              `json:"exclusive"`
	Taken        map[string]string `json:"taken"`
	OtherPickers []string          `json:"otherPickers"`
}

// Availability reports which options are held, and by whom, for the match.
func (s *PicksService) Availability(eventID string, matchID int, playerName string) (*Availability, error) {
	event, ok := s.snapshots.Event(eventID)
	if !ok {
		return nil, ErrEventNotFound
	}
	match, ok := event.FindMatch(matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}

	players := s.snapshots.Players()
	return &Availability{
		Exclusive:    IsExclusive(*event, *match),
		Taken:        TakenOptions(players, eventID, matchID, playerName),
		OtherPickers: OtherPickers(players, eventID, matchID, playerName),
	}, nil
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
