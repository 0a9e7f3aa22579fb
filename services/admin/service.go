package admin

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/wrestlepicks/league-sync/pkg/pickkey"
	league "github.com/wrestlepicks/league-sync/repos/league"
	mailer "github.com/wrestlepicks/league-sync/repos/mailer"
	standings "github.com/wrestlepicks/league-sync/services/standings"
)

var (
	ErrInvalidMatch       = errors.New("match needs a title and at least two options")
	ErrInvalidStatus      = errors.New("unknown event status")
	ErrInvalidWinner      = errors.New("winner is not one of the match options")
	ErrEventNotResolvable = errors.New("winners can only be set while the event is live or completed")
	ErrEventNotCompleted  = errors.New("event is not completed")
	ErrPlayerExists       = errors.New("player name already in use")
	ErrPlayerNameMissing  = errors.New("player name is required")
)

type AdminService struct {
	leagueService    *league.Service
	standingsService *standings.StandingsService
	uploader         *league.Uploader
	mailerService    *mailer.Service
}

func NewAdminService(leagueService *league.Service, standingsService *standings.StandingsService, uploader *league.Uploader, mailerService *mailer.Service) *AdminService {
	return &AdminService{
		leagueService:    leagueService,
		standingsService: standingsService,
		uploader:         uploader,
		mailerService:    mailerService,
	}
}

// CreateEvent writes a fresh event with the fixed defaults and returns its
// id so the admin can start editing it.
func (s *AdminService) CreateEvent(ctx context.Context) (string, error) {
	return s.leagueService.CreateEvent(ctx, league.Event{
		Name:             "NEW EVENT",
		Date:             "TBD",
		Status:           league.StatusUpcoming,
		Matches:          []league.Match{},
		SubmittedPlayers: []string{},
	})
}

// UpdateEventRequest carries the event fields an admin may merge. Nil
// fields are left untouched.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Status      *string `json:"status"`
	BannerImage *string `json:"bannerImage"`
}

func (s *AdminService) UpdateEvent(ctx context.Context, eventID string, request UpdateEventRequest) error {
	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Date != nil {
		fields["date"] = *request.Date
	}
	if request.Status != nil {
		if !validStatus(*request.Status) {
			return ErrInvalidStatus
		}
		fields["status"] = *request.Status
	}
	if request.BannerImage != nil {
		fields["bannerImage"] = *request.BannerImage
	}
	if len(fields) == 0 {
		return nil
	}
	return s.leagueService.MergeEvent(ctx, eventID, fields)
}

func (s *AdminService) DeleteEvent(ctx context.Context, eventID string) error {
	return s.leagueService.DeleteEvent(ctx, eventID)
}

// AddMatch appends a match to the event. Blank options are discarded
// before validation; the new match id is unique within the event only.
func (s *AdminService) AddMatch(ctx context.Context, eventID, title string, options []string) (*league.Match, error) {
	options = discardBlanks(options)
	if strings.TrimSpace(title) == "" || len(options) < 2 {
		return nil, ErrInvalidMatch
	}

	event, err := s.leagueService.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	match := league.Match{
		ID:      nextMatchID(event.Matches),
		Title:   title,
		Options: options,
	}

	matches := append(event.Matches, match)
	if err := s.leagueService.MergeEvent(ctx, eventID, map[string]interface{}{"matches": matches}); err != nil {
		return nil, err
	}
	return &match, nil
}

// SetMatchWinner records a winner, or clears it with an empty string.
// Only allowed while the event is live or completed.
func (s *AdminService) SetMatchWinner(ctx context.Context, eventID string, matchID int, winner string) error {
	event, err := s.leagueService.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status != league.StatusLive && event.Status != league.StatusCompleted {
		return ErrEventNotResolvable
	}

	match, ok := event.FindMatch(matchID)
	if !ok {
		return league.ErrNotFound
	}
	if winner != "" && !containsOption(match.Options, winner) {
		return ErrInvalidWinner
	}

	match.Winner = winner
	return s.leagueService.MergeEvent(ctx, eventID, map[string]interface{}{"matches": event.Matches})
}

// UploadBanner stores the image and merges its public URL onto the event.
func (s *AdminService) UploadBanner(ctx context.Context, eventID, filename string, r io.Reader) (string, error) {
	url, err := s.uploader.Upload(ctx, league.EventBannerPath(eventID, filename), r)
	if err != nil {
		return "", err
	}
	if err := s.leagueService.MergeEvent(ctx, eventID, map[string]interface{}{"bannerImage": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *AdminService) CreatePlayer(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrPlayerNameMissing
	}

	_, err := s.leagueService.FindPlayerByName(ctx, name)
	if err == nil {
		return "", ErrPlayerExists
	}
	if !errors.Is(err, league.ErrNotFound) {
		return "", err
	}

	return s.leagueService.CreatePlayer(ctx, league.Player{
		Name:  name,
		Picks: map[string]string{},
	})
}

func (s *AdminService) DeletePlayer(ctx context.Context, playerID string) error {
	return s.leagueService.DeletePlayer(ctx, playerID)
}

// ResetSinglePick removes exactly one pick entry for the named player.
// SubmittedPlayers membership and every other pick stay untouched.
func (s *AdminService) ResetSinglePick(ctx context.Context, eventID string, matchID int, playerName string) error {
	player, err := s.leagueService.FindPlayerByName(ctx, playerName)
	if err != nil {
		return err
	}
	return s.leagueService.DeletePicks(ctx, player.ID, pickkey.Key(eventID, matchID))
}

// ResetAllPicks removes every pick the named player recorded for the event
// and takes them off the event's submitted list so they can re-submit.
func (s *AdminService) ResetAllPicks(ctx context.Context, eventID, playerName string) error {
	player, err := s.leagueService.FindPlayerByName(ctx, playerName)
	if err != nil {
		return err
	}

	if err := s.leagueService.DeletePicks(ctx, player.ID, eventPickKeys(*player, eventID)...); err != nil {
		return err
	}
	return s.leagueService.RemoveSubmittedPlayer(ctx, eventID, playerName)
}

// NotifyResults mails the current standings once an event is completed.
func (s *AdminService) NotifyResults(ctx context.Context, eventID string) error {
	event, err := s.leagueService.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status != league.StatusCompleted {
		return ErrEventNotCompleted
	}

	rows := s.standingsService.GetStandings()
	results := make([]mailer.Standing, 0, len(rows))
	for _, row := range rows {
		results = append(results, mailer.Standing{
			Rank:   row.Rank,
			Name:   row.Name,
			Points: row.Points,
		})
	}
	return s.mailerService.SendResults(ctx, event.Name, results)
}

// eventPickKeys lists every pick key of the player that belongs to the
// event. Other events' keys are never included.
func eventPickKeys(player league.Player, eventID string) []string {
	var keys []string
	for key := range player.Picks {
		if pickkey.BelongsTo(key, eventID) {
			keys = append(keys, key)
		}
	}
	return keys
}

func discardBlanks(options []string) []string {
	kept := make([]string, 0, len(options))
	for _, option := range options {
		if strings.TrimSpace(option) != "" {
			kept = append(kept, option)
		}
	}
	return kept
}

func nextMatchID(matches []league.Match) int {
	max := 0
	for _, match := range matches {
		if match.ID > max {
			max = match.ID
		}
	}
	return max + 1
}

func validStatus(status string) bool {
	switch status {
	case league.StatusUpcoming, league.StatusOpen, league.StatusLive, league.StatusCompleted:
		return true
	}
	return false
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
