package league

import (
	"context"
	"errors"
	"log"

	"cloud.google.com/go/firestore"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore collection names, shared with the web client.
const (
	CollectionEvents     = "events"
	CollectionPlayers    = "players"
	CollectionHallOfFame = "hallOfFame"
)

var ErrNotFound = errors.New("document not found")

// Service is the Firestore adapter for the three league collections.
type Service struct {
	Client *firestore.Client
}

// NewService creates a new empty service.
func NewService(client *firestore.Client) *Service {
	return &Service{
		Client: client,
	}
}

func (s Service) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	doc, err := s.Client.Collection(CollectionEvents).Doc(eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, xerrors.Errorf("get event %s: %w", eventID, err)
	}
	return docToEvent(doc)
}

func (s Service) ListEvents(ctx context.Context) ([]Event, error) {
	docs, err := s.Client.Collection(CollectionEvents).Documents(ctx).GetAll()
	if err != nil {
		return nil, xerrors.Errorf("list events: %w", err)
	}

	events := make([]Event, 0, len(docs))
	for _, doc := range docs {
		event, err := docToEvent(doc)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

// CreateEvent writes a new event document and returns its generated id.
func (s Service) CreateEvent(ctx context.Context, event Event) (string, error) {
	ref := s.Client.Collection(CollectionEvents).NewDoc()
	if _, err := ref.Set(ctx, event); err != nil {
		log.Printf("Failed to write event to Firestore: %v\n", err)
		return "", xerrors.Errorf("create event: %w", err)
	}
	return ref.ID, nil
}

// MergeEvent shallow-merges the given fields into the event document
// without clearing unspecified fields.
func (s Service) MergeEvent(ctx context.Context, eventID string, fields map[string]interface{}) error {
	_, err := s.Client.Collection(CollectionEvents).Doc(eventID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		log.Printf("Failed to merge event %s to Firestore: %v\n", eventID, err)
		return xerrors.Errorf("merge event %s: %w", eventID, err)
	}
	return nil
}

func (s Service) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := s.Client.Collection(CollectionEvents).Doc(eventID).Delete(ctx)
	if err != nil {
		log.Printf("Failed to delete event %s from Firestore: %v\n", eventID, err)
		return xerrors.Errorf("delete event %s: %w", eventID, err)
	}
	return nil
}

// AddSubmittedPlayer records that a player locked in their picks. ArrayUnion
// keeps the list duplicate-free however often it is called.
func (s Service) AddSubmittedPlayer(ctx context.Context, eventID, playerName string) error {
	_, err := s.Client.Collection(CollectionEvents).Doc(eventID).Update(ctx, []firestore.Update{
		{Path: "submittedPlayers", Value: firestore.ArrayUnion(playerName)},
	})
	if err != nil {
		log.Printf("Failed to update submitted players for %s: %v\n", eventID, err)
		return xerrors.Errorf("add submitted player on %s: %w", eventID, err)
	}
	return nil
}

func (s Service) RemoveSubmittedPlayer(ctx context.Context, eventID, playerName string) error {
	_, err := s.Client.Collection(CollectionEvents).Doc(eventID).Update(ctx, []firestore.Update{
		{Path: "submittedPlayers", Value: firestore.ArrayRemove(playerName)},
	})
	if err != nil {
		log.Printf("Failed to update submitted players for %s: %v\n", eventID, err)
		return xerrors.Errorf("remove submitted player on %s: %w", eventID, err)
	}
	return nil
}

func (s Service) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	doc, err := s.Client.Collection(CollectionPlayers).Doc(playerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, xerrors.Errorf("get player %s: %w", playerID, err)
	}
	return docToPlayer(doc)
}

// FindPlayerByName looks a player up by their display name, the unique key
// the web client identifies players with.
func (s Service) FindPlayerByName(ctx context.Context, name string) (*Player, error) {
	docs, err := s.Client.Collection(CollectionPlayers).
		Where("name", "==", name).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, xerrors.Errorf("find player %s: %w", name, err)
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docToPlayer(docs[0])
}

func (s Service) ListPlayers(ctx context.Context) ([]Player, error) {
	docs, err := s.Client.Collection(CollectionPlayers).Documents(ctx).GetAll()
	if err != nil {
		return nil, xerrors.Errorf("list players: %w", err)
	}

	players := make([]Player, 0, len(docs))
	for _, doc := range docs {
		player, err := docToPlayer(doc)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, nil
}

func (s Service) CreatePlayer(ctx context.Context, player Player) (string, error) {
	ref := s.Client.Collection(CollectionPlayers).NewDoc()
	if _, err := ref.Set(ctx, player); err != nil {
		log.Printf("Failed to write player to Firestore: %v\n", err)
		return "", xerrors.Errorf("create player: %w", err)
	}
	return ref.ID, nil
}

func (s Service) DeletePlayer(ctx context.Context, playerID string) error {
	_, err := s.Client.Collection(CollectionPlayers).Doc(playerID).Delete(ctx)
	if err != nil {
		log.Printf("Failed to delete player %s from Firestore: %v\n", playerID, err)
		return xerrors.Errorf("delete player %s: %w", playerID, err)
	}
	return nil
}

// SetPick writes exactly one pick entry. The key may contain characters
// that are not valid in a dotted path, so the field path form is used.
func (s Service) SetPick(ctx context.Context, playerID, pickKey, option string) error {
	_, err := s.Client.Collection(CollectionPlayers).Doc(playerID).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"picks", pickKey}, Value: option},
	})
	if err != nil {
		log.Printf("Failed to write pick for player %s: %v\n", playerID, err)
		return xerrors.Errorf("set pick %s for player %s: %w", pickKey, playerID, err)
	}
	return nil
}

// DeletePicks removes the given pick entries using the field-deletion
// sentinel, leaving every other pick untouched.
func (s Service) DeletePicks(ctx context.Context, playerID string, pickKeys ...string) error {
	if len(pickKeys) == 0 {
		return nil
	}

	updates := make([]firestore.Update, 0, len(pickKeys))
	for _, key := range pickKeys {
		updates = append(updates, firestore.Update{
			FieldPath: firestore.FieldPath{"picks", key},
			Value:     firestore.Delete,
		})
	}

	_, err := s.Client.Collection(CollectionPlayers).Doc(playerID).Update(ctx, updates)
	if err != nil {
		log.Printf("Failed to delete picks for player %s: %v\n", playerID, err)
		return xerrors.Errorf("delete picks for player %s: %w", playerID, err)
	}
	return nil
}

func (s Service) ListHallOfFame(ctx context.Context) ([]HallOfFameEntry, error) {
	docs, err := s.Client.Collection(CollectionHallOfFame).Documents(ctx).GetAll()
	if err != nil {
		return nil, xerrors.Errorf("list hall of fame: %w", err)
	}

	entries := make([]HallOfFameEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := docToHallOfFameEntry(doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (s Service) CreateHallOfFameEntry(ctx context.Context, entry HallOfFameEntry) (string, error) {
	ref := s.Client.Collection(CollectionHallOfFame).NewDoc()
	if _, err := ref.Set(ctx, entry); err != nil {
		log.Printf("Failed to write hall of fame entry to Firestore: %v\n", err)
		return "", xerrors.Errorf("create hall of fame entry: %w", err)
	}
	return ref.ID, nil
}

func (s Service) MergeHallOfFameEntry(ctx context.Context, entryID string, fields map[string]interface{}) error {
	_, err := s.Client.Collection(CollectionHallOfFame).Doc(entryID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		log.Printf("Failed to merge hall of fame entry %s to Firestore: %v\n", entryID, err)
		return xerrors.Errorf("merge hall of fame entry %s: %w", entryID, err)
	}
	return nil
}

func (s Service) DeleteHallOfFameEntry(ctx context.Context, entryID string) error {
	_, err := s.Client.Collection(CollectionHallOfFame).Doc(entryID).Delete(ctx)
	if err != nil {
		log.Printf("Failed to delete hall of fame entry %s from Firestore: %v\n", entryID, err)
		return xerrors.Errorf("delete hall of fame entry %s: %w", entryID, err)
	}
	return nil
}

func docToEvent(doc *firestore.DocumentSnapshot) (*Event, error) {
	var event Event
	if err := doc.DataTo(&event); err != nil {
		// If this fails, we have an inconsistency error as we control both the data written to
		// Firestore and the shape of our `Event` struct.
		return nil, xerrors.Errorf(
			"consistency error. Converting %+v to internal event struct failed: %w",
			doc,
			err,
		)
	}
	event.ID = doc.Ref.ID
	event.Normalize()
	return &event, nil
}

func docToPlayer(doc *firestore.DocumentSnapshot) (*Player, error) {
	var player Player
	if err := doc.DataTo(&player); err != nil {
		return nil, xerrors.Errorf(
			"consistency error. Converting %+v to internal player struct failed: %w",
			doc,
			err,
		)
	}
	player.ID = doc.Ref.ID
	player.Normalize()
	return &player, nil
}

func docToHallOfFameEntry(doc *firestore.DocumentSnapshot) (*HallOfFameEntry, error) {
	var entry HallOfFameEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, xerrors.Errorf(
			"consistency error. Converting %+v to internal hall of fame struct failed: %w",
			doc,
			err,
		)
	}
	entry.ID = doc.Ref.ID
	return &entry, nil
}
