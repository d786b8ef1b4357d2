// Package embedding defines the embedding provider contract and a local
// deterministic implementation used by the CLI.
package embedding

import "context"

// Provider produces fixed-dimension embeddings for texts. Implementations
// backed by remote models are expected to respect ctx; the local hashing
// provider is CPU-only and returns immediately.
type Provider interface {
	// Embed returns one embedding per input text, each of length Dimension.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the fixed embedding dimension.
	Dimension() int
}
