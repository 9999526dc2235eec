// Package vector provides the Qdrant-backed vector store used to hold
// schema knowledge and question-SQL embeddings.
package vector

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/prasetya/academic-datamart/internal/config"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// Store wraps a Qdrant client with the fixed vector geometry used by all
// collections.
type Store struct {
	client  *qdrant.Client
	dim     uint64
	timeout time.Duration
}

// CollectionStats summarizes one collection after training.
type CollectionStats struct {
	Points   uint64
	Dim      uint64
	Distance string
}

// NewStore connects to Qdrant using the configured URL. The URL form keeps
// parity with HTTP-style deployment configs while the client itself speaks
// gRPC on the same host.
func NewStore(cfg *config.QdrantConfig, dim int) (*Store, error) {
	host, port, useTLS, err := splitURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing qdrant url: %w", err)
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("creating qdrant client: %w", err)
	}

	return &Store{
		client:  client,
		dim:     uint64(dim),
		timeout: cfg.Timeout,
	}, nil
}

// splitURL extracts host, gRPC port and TLS mode from a Qdrant URL. The
// default gRPC port is used when the URL carries none.
func splitURL(raw string) (host string, port int, useTLS bool, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", 0, false, err
	}
	if u.Host == "" {
		return "", 0, false, fmt.Errorf("url %q has no host", raw)
	}

	host = u.Hostname()
	useTLS = u.Scheme == "https"

	port = 6334
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return "", 0, false, fmt.Errorf("invalid port in url %q: %w", raw, err)
		}
	}
	return host, port, useTLS, nil
}

// EnsureCollection creates the collection if it does not exist. Existing
// collections are left untouched so retraining stays idempotent.
func (s *Store) EnsureCollection(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	exists, err := s.client.CollectionExists(ctx, name)
	if err != nil {
		return fmt.Errorf("checking collection %s: %w", name, err)
	}
	if exists {
		logger.Info().Str("collection", name).Msg("Using existing collection")
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.dim,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("creating collection %s: %w", name, err)
	}

	logger.Info().Str("collection", name).Uint64("dim", s.dim).Msg("Created collection")
	return nil
}

// Upsert writes one point. The caller supplies a deterministic point ID so
// re-indexing the same content overwrites rather than duplicates.
func (s *Store) Upsert(ctx context.Context, collection string, id uuid.UUID, vec []float32, payload map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(id.String()),
				Vectors: qdrant.NewVectors(vec...),
				Payload: qdrant.NewValueMap(payload),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("upserting into %s: %w", collection, err)
	}
	return nil
}

// Stats reads point count and vector geometry for one collection.
func (s *Store) Stats(ctx context.Context, collection string) (CollectionStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	info, err := s.client.GetCollectionInfo(ctx, collection)
	if err != nil {
		return CollectionStats{}, fmt.Errorf("reading collection %s: %w", collection, err)
	}

	stats := CollectionStats{Points: info.GetPointsCount()}
	if params := info.GetConfig().GetParams().GetVectorsConfig().GetParams(); params != nil {
		stats.Dim = params.GetSize()
		stats.Distance = params.GetDistance().String()
	}
	return stats, nil
}
