// Package vectorindex provides an append-only flat nearest-neighbor
// index over fixed-dimension float32 embeddings, paired with a parallel
// metadata sequence. Position i in the metadata always corresponds to
// vector i in the index. The pair is persisted as two sibling files (a
// binary vector file and a JSON metadata array) and reloaded on open.
package vectorindex

import (
	"fmt"
	"os"
	"sort"
	"sync"

	mmerrors "github.com/otherjamesbrown/meetmind/pkg/errors"
)

// Persisted file names under the index directory.
const (
	VectorsFile  = "vectors.bin"
	MetadataFile = "metadata.json"
)

// ChunkMetadata describes one indexed chunk. The embedding itself lives
// in the vector file and is not serialized with the metadata.
type ChunkMetadata struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	FileType    string `json:"file_type"`
	UploadDate  string `json:"upload_date"`
	ChunkID     int    `json:"chunk_id"`
	TextPreview string `json:"text_preview"`
}

// SearchResult is a metadata entry annotated with its distance to the
// query. Distance is squared Euclidean (flat L2 index convention).
type SearchResult struct {
	ChunkMetadata
	Distance float64 `json:"distance"`
}

// Index is an append-only flat L2 index with two-file persistence.
//
// Add calls are serialized by an internal mutex; Search calls may run
// concurrently with each other but take a read lock so they never race
// an in-flight Add. Removal is not supported.
type Index struct {
	mu        sync.RWMutex
	dir       string
	dimension int
	vectors   [][]float32
	metadata  []ChunkMetadata
}

// Open loads the index stored under dir, or creates an empty one if no
// files are present. The dimension is fixed for the lifetime of the
// index; vectors of any other length are rejected. Opening a persisted
// index whose stored dimension differs from the requested one fails.
func Open(dir string, dimension int) (*Index, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("dimension must be positive, got %d: %w", dimension, mmerrors.ErrValidation)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	ix := &Index{dir: dir, dimension: dimension}
	if err := ix.load(); err != nil {
		return nil, err
	}
	return ix, nil
}

// Dimension returns the fixed embedding dimension.
func (ix *Index) Dimension() int {
	return ix.dimension
}

// Count returns the current number of indexed vectors.
func (ix *Index) Count() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.vectors)
}

// Metadata returns a copy of the metadata sequence in index order.
func (ix *Index) Metadata() []ChunkMetadata {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]ChunkMetadata, len(ix.metadata))
	copy(out, ix.metadata)
	return out
}

// Add appends embeddings and their metadata in lock-step and persists
// the index immediately. Embeddings and metadata must have equal length
// and every vector must match the index dimension; violations fail fast
// without mutating the index.
func (ix *Index) Add(embeddings [][]float32, meta []ChunkMetadata) error {
	if len(embeddings) != len(meta) {
		return fmt.Errorf("%d embeddings, %d metadata entries: %w",
			len(embeddings), len(meta), mmerrors.ErrLengthMismatch)
	}
	for i, e := range embeddings {
		if len(e) != ix.dimension {
			return fmt.Errorf("vector %d: got dimension %d, want %d: %w",
				i, len(e), ix.dimension, mmerrors.ErrDimensionMismatch)
		}
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.vectors = append(ix.vectors, embeddings...)
	ix.metadata = append(ix.metadata, meta...)

	return ix.persistLocked()
}

// Search returns the k stored entries closest to query by ascending
// squared L2 distance. If k exceeds the index size the result is
// truncated to the available count.
func (ix *Index) Search(query []float32, k int) ([]SearchResult, error) {
	if len(query) != ix.dimension {
		return nil, fmt.Errorf("query: got dimension %d, want %d: %w",
			len(query), ix.dimension, mmerrors.ErrDimensionMismatch)
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if k > len(ix.vectors) {
		k = len(ix.vectors)
	}
	if k <= 0 {
		return []SearchResult{}, nil
	}

	distances := make([]float64, len(ix.vectors))
	order := make([]int, len(ix.vectors))
	for i, v := range ix.vectors {
		distances[i] = squaredL2(query, v)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return distances[order[a]] < distances[order[b]]
	})

	results := make([]SearchResult, 0, k)
	for _, idx := range order[:k] {
		results = append(results, SearchResult{
			ChunkMetadata: ix.metadata[idx],
			Distance:      distances[idx],
		})
	}
	return results, nil
}

// squaredL2 computes the squared Euclidean distance between two vectors
// of equal length.
func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
