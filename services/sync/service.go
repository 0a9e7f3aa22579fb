package sync

import (
	"context"
	"log"
	"sync"

	league "github.com/wrestlepicks/league-sync/repos/league"
)

// SyncService keeps local copies of the three league collections. Each
// subscription delivers whole-collection snapshots that replace the cached
// slice wholesale; there is no incremental diffing. Readers see state that
// is only as fresh as the last delivered snapshot.
type SyncService struct {
	leagueService *league.Service

	mu         sync.RWMutex
	events     []league.Event
	players    []league.Player
	hallOfFame []league.HallOfFameEntry

	cancel context.CancelFunc
	done   sync.WaitGroup
}

func NewSyncService(leagueService *league.Service) *SyncService {
	return &SyncService{
		leagueService: leagueService,
	}
}

// Start opens the three collection subscriptions. They run until Stop.
func (s *SyncService) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.done.Add(3)
	go func() {
		defer s.done.Done()
		if err := s.leagueService.WatchEvents(ctx, s.setEvents); err != nil {
			log.Printf("Events subscription ended: %v\n", err)
		}
	}()
	go func() {
		defer s.done.Done()
		if err := s.leagueService.WatchPlayers(ctx, s.setPlayers); err != nil {
			log.Printf("Players subscription ended: %v\n", err)
		}
	}()
	go func() {
		defer s.done.Done()
		if err := s.leagueService.WatchHallOfFame(ctx, s.setHallOfFame); err != nil {
			log.Printf("Hall of fame subscription ended: %v\n", err)
		}
	}()
}

// Stop unsubscribes all three feeds. Safe to call on every exit path.
func (s *SyncService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.done.Wait()
}

func (s *SyncService) setEvents(events []league.Event) {
	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
}

func (s *SyncService) setPlayers(players []league.Player) {
	s.mu.Lock()
	s.players = players
	s.mu.Unlock()
}

func (s *SyncService) setHallOfFame(entries []league.HallOfFameEntry) {
	s.mu.Lock()
	s.hallOfFame = entries
	s.mu.Unlock()
}

// Events returns the cached events snapshot.
func (s *SyncService) Events() []league.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]league.Event, len(s.events))
	copy(events, s.events)
	return events
}

// Event returns one cached event by id.
func (s *SyncService) Event(eventID string) (*league.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == eventID {
			event := s.events[i]
			return &event, true
		}
	}
	return nil, false
}

// Players returns the cached players snapshot.
func (s *SyncService) Players() []league.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]league.Player, len(s.players))
	copy(players, s.players)
	return players
}

// HallOfFame returns the cached hall of fame snapshot.
func (s *SyncService) HallOfFame() []league.HallOfFameEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]league.HallOfFameEntry, len(s.hallOfFame))
	copy(entries, s.hallOfFame)
	return entries
}
