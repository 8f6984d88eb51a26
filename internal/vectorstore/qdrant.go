package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"wellspring-ai/internal/contextutil"
)

// QdrantStore implements Store using Qdrant.
type QdrantStore struct {
	client *qdrant.Client
}

// namespaceField is the payload field carrying the corpus partition id.
const namespaceField = "namespace"

// NewQdrantStore creates a new Qdrant store client.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) will be derived from the HTTP port.
func NewQdrantStore(urlStr string) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	// gRPC port is typically HTTP port + 1
	port := 6334
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client: client,
	}, nil
}

// Search performs a namespace-scoped similarity search.
func (s *QdrantStore) Search(ctx context.Context, collection string, query []float32, params SearchParams) ([]Document, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if params.MatchCount <= 0 {
		return nil, fmt.Errorf("match count must be greater than 0")
	}
	if params.Namespace == "" {
		return nil, fmt.Errorf("namespace is required")
	}

	limit := uint64(params.MatchCount)
	threshold := params.MatchThreshold
	queryReq := &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(query...),
		Limit:          &limit,
		ScoreThreshold: &threshold,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(namespaceField, params.Namespace),
			},
		},
	}

	scoredPoints, err := s.client.Query(ctx, queryReq)
	if err != nil {
		logger.ErrorContext(ctx, "failed to search points",
			"collection", collection, "namespace", params.Namespace, "error", err)
		return nil, fmt.Errorf("failed to search points: %w", err)
	}

	results := make([]Document, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		doc := Document{Similarity: point.Score}

		if point.Id != nil {
			doc.ID = point.Id.GetUuid()
		}
		if point.Payload != nil {
			payload := convertPayloadToMap(point.Payload)
			doc.Type, _ = payload["type"].(string)
			doc.Title, _ = payload["title"].(string)
			doc.Content, _ = payload["content"].(string)
			doc.URL, _ = payload["url"].(string)
			if meta, ok := payload["metadata"].(map[string]any); ok {
				doc.Metadata = meta
			}
		}

		results = append(results, doc)
	}

	logger.InfoContext(ctx, "search completed",
		"collection", collection, "namespace", params.Namespace,
		"threshold", params.MatchThreshold, "results", len(results))
	return results, nil
}

// CollectionExists checks if a collection exists.
func (s *QdrantStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return false, fmt.Errorf("failed to check collection existence: %w", err)
	}
	return exists, nil
}

// convertPayloadToMap converts Qdrant payload to map[string]any.
func convertPayloadToMap(payload map[string]*qdrant.Value) map[string]any {
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		result[k] = convertValue(v)
	}
	return result
}

// convertValue converts a Qdrant Value to Go any type.
func convertValue(v *qdrant.Value) any {
	switch val := v.Kind.(type) {
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_ListValue:
		list := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			list[i] = convertValue(item)
		}
		return list
	case *qdrant.Value_StructValue:
		return convertPayloadToMap(val.StructValue.Fields)
	default:
		return nil
	}
}
