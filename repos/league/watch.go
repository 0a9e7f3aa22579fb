package league

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WatchEvents subscribes to the events collection and calls deliver with
// the whole collection on every server-side change. It blocks until the
// context is cancelled.
func (s Service) WatchEvents(ctx context.Context, deliver func([]Event)) error {
	return s.watch(ctx, CollectionEvents, func(docs []*firestore.DocumentSnapshot) {
		events := make([]Event, 0, len(docs))
		for _, doc := range docs {
			event, err := docToEvent(doc)
			if err != nil {
				log.Printf("Skipping malformed event document %s: %v\n", doc.Ref.ID, err)
				continue
			}
			events = append(events, *event)
		}
		deliver(events)
	})
}

// WatchPlayers is the players-collection counterpart of WatchEvents.
func (s Service) WatchPlayers(ctx context.Context, deliver func([]Player)) error {
	return s.watch(ctx, CollectionPlayers, func(docs []*firestore.DocumentSnapshot) {
		players := make([]Player, 0, len(docs))
		for _, doc := range docs {
			player, err := docToPlayer(doc)
			if err != nil {
				log.Printf("Skipping malformed player document %s: %v\n", doc.Ref.ID, err)
				continue
			}
			players = append(players, *player)
		}
		deliver(players)
	})
}

// WatchHallOfFame is the hall-of-fame counterpart of WatchEvents.
func (s Service) WatchHallOfFame(ctx context.Context, deliver func([]HallOfFameEntry)) error {
	return s.watch(ctx, CollectionHallOfFame, func(docs []*firestore.DocumentSnapshot) {
		entries := make([]HallOfFameEntry, 0, len(docs))
		for _, doc := range docs {
			entry, err := docToHallOfFameEntry(doc)
			if err != nil {
				log.Printf("Skipping malformed hall of fame document %s: %v\n", doc.Ref.ID, err)
				continue
			}
			entries = append(entries, *entry)
		}
		deliver(entries)
	})
}

func (s Service) watch(ctx context.Context, collection string, deliver func([]*firestore.DocumentSnapshot)) error {
	iter := s.Client.Collection(collection).Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return nil
			}
			return xerrors.Errorf("%s snapshot: %w", collection, err)
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			log.Printf("Failed to read %s snapshot documents: %v\n", collection, err)
			continue
		}
		deliver(docs)
	}
}
