package picks

import (
	"strings"

	"github.com/wrestlepicks/league-sync/pkg/pickkey"
	league "github.com/wrestlepicks/league-sync/repos/league"
)

// ExemptOption is the catch-all choice any number of players may hold,
// even on an exclusive match. Matched case-insensitively.
const ExemptOption = "OTHER"

// The two match titles that are exclusive, in normalized form.
var exclusiveTitles = map[string]bool{
	"men's royal rumble match":   true,
	"women's royal rumble match": true,
}

// Titles arrive with whatever apostrophe glyph the admin's keyboard
// produced; fold them all to the plain one before comparing.
var apostropheFolder = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"`", "'",
	"´", "'",
)

func normalizeTitle(title string) string {
	return strings.ToLower(apostropheFolder.Replace(title))
}

// IsExclusive reports whether each option of the match may be held by at
// most one player. Only matches the rumble titles inside an event whose
// name contains "royal rumble"; every other match stays unrestricted.
func IsExclusive(event league.Event, match league.Match) bool {
	if !strings.Contains(strings.ToLower(event.Name), "royal rumble") {
		return false
	}
	return exclusiveTitles[normalizeTitle(match.Title)]
}

func isExempt(option string) bool {
	return strings.EqualFold(option, ExemptOption)
}

// TakenOptions maps each picked option of the match to the name of the
// player holding it, skipping the excluded player and exempt picks. The
// data model does not prevent two holders of one option; when that
// happens the player encountered last wins.
func TakenOptions(players []league.Player, eventID string, matchID int, excludingPlayerName string) map[string]string {
	key := pickkey.Key(eventID, matchID)

	taken := make(map[string]string)
	for _, player := range players {
		if player.Name == excludingPlayerName {
			continue
		}
		option, ok := player.Picks[key]
		if !ok || isExempt(option) {
			continue
		}
		taken[option] = player.Name
	}
	return taken
}

// OtherPickers lists the players that picked the exempt option for the
// match, excluding the given player.
func OtherPickers(players []league.Player, eventID string, matchID int, excludingPlayerName string) []string {
	key := pickkey.Key(eventID, matchID)

	var names []string
	for _, player := range players {
		if player.Name == excludingPlayerName {
			continue
		}
		if option, ok := player.Picks[key]; ok && isExempt(option) {
			names = append(names, player.Name)
		}
	}
	return names
}

// Blocker returns the player blocking currentPlayer from picking option,
// if any. An option only blocks on an exclusive match, never blocks when
// exempt, and never blocks the player's own recorded pick.
func Blocker(players []league.Player, event league.Event, match league.Match, option, currentPlayerName string) (string, bool) {
	if !IsExclusive(event, match) || isExempt(option) {
		return "", false
	}

	key := pickkey.Key(event.ID, match.ID)
	for _, player := range players {
		if player.Name == currentPlayerName && player.Picks[key] == option {
			return "", false
		}
	}

	holder, ok := TakenOptions(players, event.ID, match.ID, currentPlayerName)[option]
	if !ok {
		return "", false
	}
	return holder, true
}
