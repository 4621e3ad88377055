package egeria

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const batchSize = 100

// MEMBERSHIP OPERATIONS

// AddAllToCollection adds every element to a collection. Links are issued
// in batches; the calls within a batch run concurrently.
func AddAllToCollection(ctx context.Context, m *CollectionManager, collectionGUID string, elementGUIDs []string) error {
	if err := requireGUID("collection guid", collectionGUID); err != nil {
		return err
	}
	return inBatches(ctx, m.client.Logger(), "adding", elementGUIDs, func(ctx context.Context, guid string) error {
		return m.AddToCollection(ctx, collectionGUID, guid, nil)
	})
}

// RemoveAllFromCollection removes every element from a collection in batches
func RemoveAllFromCollection(ctx context.Context, m *CollectionManager, collectionGUID string, elementGUIDs []string) error {
	if err := requireGUID("collection guid", collectionGUID); err != nil {
		return err
	}
	return inBatches(ctx, m.client.Logger(), "removing", elementGUIDs, func(ctx context.Context, guid string) error {
		return m.RemoveFromCollection(ctx, collectionGUID, guid)
	})
}

// CopyCollectionMembers adds the members of one collection to another
// Example: CopyCollectionMembers(ctx, egeria.Collections(), draftGUID, publishedGUID)
func CopyCollectionMembers(ctx context.Context, m *CollectionManager, fromGUID, toGUID string) error {
	members, err := AllCollectionMembers(ctx, m, fromGUID)
	if err != nil {
		return fmt.Errorf("failed to read members: %w", err)
	}
	if len(members) == 0 {
		m.client.Logger().Info("no members to copy", zap.String("collection", fromGUID))
		return nil
	}

	if err := AddAllToCollection(ctx, m, toGUID, members); err != nil {
		return fmt.Errorf("failed to add members: %w", err)
	}
	return nil
}

// MoveCollectionMembers moves every member of one collection into another
func MoveCollectionMembers(ctx context.Context, m *CollectionManager, fromGUID, toGUID string) error {
	members, err := AllCollectionMembers(ctx, m, fromGUID)
	if err != nil {
		return fmt.Errorf("failed to read members: %w", err)
	}
	if len(members) == 0 {
		m.client.Logger().Info("no members to move", zap.String("collection", fromGUID))
		return nil
	}

	if err := AddAllToCollection(ctx, m, toGUID, members); err != nil {
		return fmt.Errorf("failed to add members: %w", err)
	}
	if err := RemoveAllFromCollection(ctx, m, fromGUID, members); err != nil {
		return fmt.Errorf("failed to remove old members: %w", err)
	}
	return nil
}

// AllCollectionMembers pages through a collection and returns the GUIDs of
// its members
func AllCollectionMembers(ctx context.Context, m *CollectionManager, collectionGUID string) ([]string, error) {
	elements, err := CollectAll(ctx, batchSize, func(ctx context.Context, startFrom, pageSize int) ([]Element, error) {
		return m.GetCollectionMembers(ctx, collectionGUID, SearchOptions{StartFrom: startFrom, PageSize: pageSize})
	})
	if err != nil {
		return nil, err
	}
	guids := make([]string, 0, len(elements))
	for _, el := range elements {
		guids = append(guids, el.GUID())
	}
	return guids, nil
}

// inBatches runs fn for every guid, batchSize at a time
func inBatches(ctx context.Context, logger *zap.Logger, verb string, guids []string, fn func(context.Context, string) error) error {
	total := len(guids)
	for i := 0; i < total; i += batchSize {
		end := min(i+batchSize, total)
		batch := guids[i:end]
		logger.Debug(verb+" batch", zap.Int("from", i+1), zap.Int("to", end), zap.Int("total", total))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxConcurrentFetches)
		for _, guid := range batch {
			g.Go(func() error {
				return fn(gctx, guid)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("failed %s batch %d-%d: %w", verb, i+1, end, err)
		}
	}
	return nil
}
