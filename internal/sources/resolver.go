// Package sources resolves citation chunk ids to preview records. The
// resolver owns no network logic: it deduplicates the ids, issues exactly
// one batched lookup through the callback it was given, and shapes the
// result into a map keyed by chunk id.
package sources

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
)

// Record is the preview of one retrieved text passage.
type Record struct {
	ChunkID      int    `json:"chunk_id"`
	DocumentID   int    `json:"document_id"`
	DocumentName string `json:"document_name,omitempty"`
	TextPreview  string `json:"text_preview,omitempty"`
}

// ResolveResponse is the service's batched resolution payload.
type ResolveResponse struct {
	Items           []Record `json:"items"`
	MissingChunkIDs []int    `json:"missing_chunk_ids,omitempty"`
}

// Lookup performs one batched resolution call. It is owned by the transport
// layer; the resolver guarantees the ids it passes are deduplicated and
// sorted, and never calls it with an empty set.
type Lookup func(ctx context.Context, chunkIDs []int) ([]Record, error)

// ErrSuperseded is returned by a pass whose result arrived after a newer
// pass had already started. The caller must discard the result: stale
// citation data never overwrites the current mapping.
var ErrSuperseded = errors.New("sources: resolution superseded by a newer request")

// Resolver batches and deduplicates citation lookups. The zero value is not
// usable; construct with New.
type Resolver struct {
	lookup Lookup
	gen    atomic.Uint64
}

// New creates a Resolver around the given lookup.
func New(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve deduplicates ids, performs one lookup, and returns the records
// keyed by chunk id. Ids the service could not resolve are simply absent
// from the map. An empty or all-duplicate-free-of-content id set resolves
// to an empty map without calling the lookup.
func (r *Resolver) Resolve(ctx context.Context, chunkIDs []int) (map[int]Record, error) {
	ids := Dedupe(chunkIDs)
	if len(ids) == 0 {
		return map[int]Record{}, nil
	}

	items, err := r.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	resolved := make(map[int]Record, len(items))
	for _, item := range items {
		resolved[item.ChunkID] = item
	}
	return resolved, nil
}

// Start opens a new resolution pass and invalidates every earlier one.
// Use passes when resolutions race with UI changes: the latest pass wins
// regardless of which response returns first.
func (r *Resolver) Start() Pass {
	return Pass{resolver: r, id: r.gen.Add(1)}
}

// Pass is one generation-tagged resolution attempt.
type Pass struct {
	resolver *Resolver
	id       uint64
}

// Stale reports whether a newer pass has started since this one.
func (p Pass) Stale() bool {
	return p.resolver.gen.Load() != p.id
}

// Resolve behaves like Resolver.Resolve but fails with ErrSuperseded when a
// newer pass started before the lookup finished, so the caller cannot
// accidentally apply an outdated citation mapping.
func (p Pass) Resolve(ctx context.Context, chunkIDs []int) (map[int]Record, error) {
	if p.Stale() {
		return nil, ErrSuperseded
	}
	resolved, err := p.resolver.Resolve(ctx, chunkIDs)
	if err != nil {
		return nil, err
	}
	if p.Stale() {
		return nil, ErrSuperseded
	}
	return resolved, nil
}

// Dedupe returns the distinct chunk ids in ascending order.
func Dedupe(chunkIDs []int) []int {
	if len(chunkIDs) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(chunkIDs))
	for _, id := range chunkIDs {
		set[id] = struct{}{}
	}
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
