package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// DefaultDimension matches the common sentence-transformer output size.
const DefaultDimension = 384

// Hashing is a deterministic token-feature-hashing embedder. It stands
// in for a real embedding model: each lower-cased token is hashed into a
// bucket of the output vector and the result is unit-normalized, so
// identical texts always produce identical embeddings and lexically
// similar texts land near each other. Retrieval quality is naturally far
// below a trained model's.
type Hashing struct {
	dimension int
}

// NewHashing creates a hashing embedder of the given dimension
// (DefaultDimension when non-positive).
func NewHashing(dimension int) *Hashing {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Hashing{dimension: dimension}
}

// Dimension returns the fixed embedding dimension.
func (h *Hashing) Dimension() int {
	return h.dimension
}

// Embed hashes each text's tokens into a unit-normalized vector.
func (h *Hashing) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = h.embedOne(text)
	}
	return out, nil
}

func (h *Hashing) embedOne(text string) []float32 {
	vec := make([]float32, h.dimension)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		hasher := fnv.New32a()
		hasher.Write([]byte(token))
		sum := hasher.Sum32()

		bucket := int(sum % uint32(h.dimension))
		// Sign bit from the hash spreads tokens over both directions.
		if sum&0x80000000 != 0 {
			vec[bucket]--
		} else {
			vec[bucket]++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}

	return vec
}
