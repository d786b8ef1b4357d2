// Package docs extracts plain text from reference documents and splits
// it into overlapping chunks for embedding and retrieval.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mmerrors "github.com/otherjamesbrown/meetmind/pkg/errors"
)

// ExtractText reads the document at path and returns its text content.
// Only plain-text formats (.txt, .md) are supported locally; other types
// fail with ErrUnsupportedType. Read failures are wrapped with the
// format kind so callers can distinguish them from unsupported types.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("extracting text from %s file: %w", ext, err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("extracting %q: %w", ext, mmerrors.ErrUnsupportedType)
	}
}
