package docs

import "unicode/utf8"

// Default chunking parameters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// Chunk splits text into character chunks of the given size with the
// given overlap between consecutive chunks. The final partial chunk is
// kept. Non-positive or inconsistent parameters fall back to defaults.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = size / 10
		}
	}

	chunks := make([]string, 0, len(text)/size+1)
	step := size - overlap

	for start := 0; start < len(text); start += step {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}

	return chunks
}

// Preview truncates text to at most n bytes for metadata previews.
// Truncation lands on a rune boundary so the result is always valid
// UTF-8.
func Preview(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
