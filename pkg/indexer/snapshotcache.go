package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ybs/pkg/routeindex"
)

var ErrNoSnapshot = errors.New("no route index snapshot cached")

const snapshotExpiration = 7 * 24 * time.Hour

// SnapshotCache keeps exported route index snapshots in redis keyed by dataset
type SnapshotCache struct {
	Cache *cache.Cache[string]
}

func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(snapshotExpiration))

	return &SnapshotCache{
		Cache: cache.New[string](redisStore),
	}
}

func snapshotKey(datasetIdentifier string) string {
	return fmt.Sprintf("ybs/snapshot/%s", datasetIdentifier)
}

func (c *SnapshotCache) Store(ctx context.Context, datasetIdentifier string, snapshot *routeindex.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := c.Cache.Set(ctx, snapshotKey(datasetIdentifier), string(snapshotJSON)); err != nil {
		return fmt.Errorf("storing snapshot for %s: %w", datasetIdentifier, err)
	}

	log.Info().
		Str("dataset", datasetIdentifier).
		Int("stops", len(snapshot.StopRoutes)).
		Int("hubs", len(snapshot.TransferHubs)).
		Msg("Stored route index snapshot")

	return nil
}

func (c *SnapshotCache) Load(ctx context.Context, datasetIdentifier string) (*routeindex.Snapshot, error) {
	snapshotJSON, err := c.Cache.Get(ctx, snapshotKey(datasetIdentifier))
	if err != nil {
		if errors.Is(err, store.NotFound{}) || errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}

		return nil, fmt.Errorf("loading snapshot for %s: %w", datasetIdentifier, err)
	}

	var snapshot routeindex.Snapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot for %s: %w", datasetIdentifier, err)
	}

	log.Debug().
		Str("dataset", datasetIdentifier).
		Time("generated", snapshot.GeneratedAt).
		Msg("Loaded route index snapshot")

	return &snapshot, nil
}
