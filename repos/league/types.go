package league

import "time"

// Event status values. Picks may only be submitted while an event is open;
// winners may only be recorded while it is live or completed.
const (
	StatusUpcoming  = "upcoming"
	StatusOpen      = "open"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

type Event struct {
	ID               string   `firestore:"-"`
	Name             string   `firestore:"name"`
	Date             string   `firestore:"date"`
	Status           string   `firestore:"status"`
	BannerImage      string   `firestore:"bannerImage"`
	Matches          []Match  `firestore:"matches"`
	SubmittedPlayers []string `firestore:"submittedPlayers"`
}

// Match ids are only unique within their owning event.
type Match struct {
	ID      int      `firestore:"id"`
	Title   string   `firestore:"title"`
	Options []string `firestore:"options"`
	Winner  string   `firestore:"winner"`
}

type Player struct {
	ID    string            `firestore:"-"`
	Name  string            `firestore:"name"`
	Picks map[string]string `firestore:"picks"`
}

type HallOfFameEntry struct {
	ID          string    `firestore:"-"`
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	ImageURL    string    `firestore:"imageUrl"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// Normalize replaces absent collections with empty ones so downstream
// logic never special-cases missing fields.
func (e *Event) Normalize() {
	if e.Matches == nil {
		e.Matches = []Match{}
	}
	if e.SubmittedPlayers == nil {
		e.SubmittedPlayers = []string{}
	}
}

// FindMatch returns the match with the given id, if present.
func (e *Event) FindMatch(matchID int) (*Match, bool) {
	for i := range e.Matches {
		if e.Matches[i].ID == matchID {
			return &e.Matches[i], true
		}
	}
	return nil, false
}

// HasSubmitted reports whether the player already locked in their picks.
func (e *Event) HasSubmitted(playerName string) bool {
	for _, name := range e.SubmittedPlayers {
		if name == playerName {
			return true
		}
	}
	return false
}

func (p *Player) Normalize() {
	if p.Picks == nil {
		p.Picks = map[string]string{}
	}
}
