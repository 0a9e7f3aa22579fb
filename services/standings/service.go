package standings

import (
	"sort"
	"strings"

	"github.com/wrestlepicks/league-sync/pkg/pickkey"
	league "github.com/wrestlepicks/league-sync/repos/league"
	syncservice "github.com/wrestlepicks/league-sync/services/sync"
)

// Row is one line of the standings table.
type Row struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type StandingsService struct {
	syncService *syncservice.SyncService
}

func NewStandingsService(syncService *syncservice.SyncService) *StandingsService {
	return &StandingsService{
		syncService: syncService,
	}
}

// GetStandings ranks every player by total points, name as tie-break.
func (s *StandingsService) GetStandings() []Row {
	players := s.syncService.Players()
	events := s.syncService.Events()

	rows := make([]Row, 0, len(players))
	for _, player := range players {
		rows = append(rows, Row{
			Name:   player.Name,
			Points: TotalPoints(player, events),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// TotalPoints is the player's historical score plus one point for every
// resolved match they predicted correctly in a live or completed event.
// Pure and deterministic given its inputs.
func TotalPoints(player league.Player, allEvents []league.Event) int {
	return totalPoints(historicalScores, player, allEvents)
}

func totalPoints(historical map[string]map[string]int, player league.Player, allEvents []league.Event) int {
	total := 0
	for _, scores := range historical {
		total += scores[player.Name]
	}

	for _, event := range allEvents {
		if event.Status != league.StatusLive && event.Status != league.StatusCompleted {
			continue
		}
		if isHistoricalEvent(historical, event.Name) {
			continue
		}
		for _, match := range event.Matches {
			if match.Winner == "" {
				continue
			}
			if player.Picks[pickkey.Key(event.ID, match.ID)] == match.Winner {
				total++
			}
		}
	}
	return total
}

func isHistoricalEvent(historical map[string]map[string]int, eventName string) bool {
	for name := range historical {
		if strings.EqualFold(name, eventName) {
			return true
		}
	}
	return false
}
