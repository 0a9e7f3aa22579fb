package halloffame

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"time"

	league "github.com/wrestlepicks/league-sync/repos/league"
	syncservice "github.com/wrestlepicks/league-sync/services/sync"
)

var (
	ErrTitleMissing = errors.New("entry title is required")
	ErrNoEntries    = errors.New("hall of fame is empty")
)

type HallOfFameService struct {
	leagueService *league.Service
	syncService   *syncservice.SyncService
	uploader      *league.Uploader
}

func NewHallOfFameService(leagueService *league.Service, syncService *syncservice.SyncService, uploader *league.Uploader) *HallOfFameService {
	return &HallOfFameService{
		leagueService: leagueService,
		syncService:   syncService,
		uploader:      uploader,
	}
}

// List returns the cached entries in insertion order, oldest first.
func (s *HallOfFameService) List() []league.HallOfFameEntry {
	entries := s.syncService.HallOfFame()
	sortEntries(entries)
	return entries
}

// sortEntries orders oldest first. Entries written before createdAt was
// tracked decode to the zero time, so ties fall back to the document id
// to keep the order stable across calls.
func sortEntries(entries []league.HallOfFameEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}

// Latest returns the most recently created entry.
func (s *HallOfFameService) Latest() (*league.HallOfFameEntry, error) {
	entries := s.List()
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return &entries[len(entries)-1], nil
}

func (s *HallOfFameService) Create(ctx context.Context, title, description string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrTitleMissing
	}
	return s.leagueService.CreateHallOfFameEntry(ctx, league.HallOfFameEntry{
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
}

// UpdateEntryRequest carries the fields an admin may merge. Nil fields are
// left untouched.
type UpdateEntryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (s *HallOfFameService) Update(ctx context.Context, entryID string, request UpdateEntryRequest) error {
	fields := map[string]interface{}{}
	if request.Title != nil {
		if strings.TrimSpace(*request.Title) == "" {
			return ErrTitleMissing
		}
		fields["title"] = *request.Title
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.ImageURL != nil {
		fields["imageUrl"] = *request.ImageURL
	}
	if len(fields) == 0 {
		return nil
	}
	return s.leagueService.MergeHallOfFameEntry(ctx, entryID, fields)
}

func (s *HallOfFameService) Delete(ctx context.Context, entryID string) error {
	return s.leagueService.DeleteHallOfFameEntry(ctx, entryID)
}

// UploadImage stores a new image for the entry and merges its URL,
// replacing whatever image the entry had.
func (s *HallOfFameService) UploadImage(ctx context.Context, entryID, filename string, r io.Reader) (string, error) {
	url, err := s.uploader.Upload(ctx, league.HallOfFameImagePath(entryID, filename), r)
	if err != nil {
		return "", err
	}
	if err := s.leagueService.MergeHallOfFameEntry(ctx, entryID, map[string]interface{}{"imageUrl": url}); err != nil {
		return "", err
	}
	return url, nil
}
