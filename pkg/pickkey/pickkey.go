package pickkey

import (
	"fmt"
	"strings"
)

// Key builds the composite key a pick is stored under in a player
// document. The format is shared with the stored data and must not change.
func Key(eventID string, matchID int) string {
	return fmt.Sprintf("%s-%d", eventID, matchID)
}

// Prefix is the leading part shared by every pick key of one event.
func Prefix(eventID string) string {
	return eventID + "-"
}

// BelongsTo reports whether key is a pick key of the given event.
func BelongsTo(key, eventID string) bool {
	return strings.HasPrefix(key, Prefix(eventID))
}
