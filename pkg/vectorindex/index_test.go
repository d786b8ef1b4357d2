package vectorindex

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mmerrors "github.com/otherjamesbrown/meetmind/pkg/errors"
)

func testMeta(i int) ChunkMetadata {
	return ChunkMetadata{
		ID:          fmt.Sprintf("chunk-%d", i),
		Filename:    "notes.txt",
		FileType:    ".txt",
		UploadDate:  "2026-08-26T10:00:00Z",
		ChunkID:     i,
		TextPreview: fmt.Sprintf("chunk %d preview", i),
	}
}

func TestIndex_RoundTrip(t *testing.T) {
	ix, err := Open(t.TempDir(), 3)
	require.NoError(t, err)

	embeddings := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	meta := []ChunkMetadata{testMeta(0), testMeta(1), testMeta(2)}
	require.NoError(t, ix.Add(embeddings, meta))

	results, err := ix.Search([]float32{1, 0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "chunk-0", results[0].ID)
	assert.InDelta(t, 0.0, results[0].Distance, 1e-6)
}

func TestIndex_SearchOrderedByDistance(t *testing.T) {
	ix, err := Open(t.TempDir(), 2)
	require.NoError(t, err)

	require.NoError(t, ix.Add([][]float32{
		{0, 0},
		{3, 0},
		{1, 0},
	}, []ChunkMetadata{testMeta(0), testMeta(1), testMeta(2)}))

	results, err := ix.Search([]float32{0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"chunk-0", "chunk-2", "chunk-1"},
		[]string{results[0].ID, results[1].ID, results[2].ID})
	assert.InDelta(t, 1.0, results[1].Distance, 1e-6)
	assert.InDelta(t, 9.0, results[2].Distance, 1e-6)
}

func TestIndex_SearchTruncatesToAvailable(t *testing.T) {
	ix, err := Open(t.TempDir(), 2)
	require.NoError(t, err)

	require.NoError(t, ix.Add([][]float32{{1, 1}}, []ChunkMetadata{testMeta(0)}))

	results, err := ix.Search([]float32{1, 1}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestIndex_CountAdditive(t *testing.T) {
	ix, err := Open(t.TempDir(), 2)
	require.NoError(t, err)

	require.NoError(t, ix.Add([][]float32{{1, 0}, {0, 1}}, []ChunkMetadata{testMeta(0), testMeta(1)}))
	require.NoError(t, ix.Add([][]float32{{1, 1}}, []ChunkMetadata{testMeta(2)}))

	assert.Equal(t, 3, ix.Count())
}

func TestIndex_DimensionMismatch(t *testing.T) {
	ix, err := Open(t.TempDir(), 3)
	require.NoError(t, err)

	err = ix.Add([][]float32{{1, 0}}, []ChunkMetadata{testMeta(0)})
	require.Error(t, err)
	assert.True(t, mmerrors.IsDimensionMismatch(err))
	assert.Zero(t, ix.Count())

	_, err = ix.Search([]float32{1, 0}, 1)
	require.Error(t, err)
	assert.True(t, mmerrors.IsDimensionMismatch(err))
}

func TestIndex_LengthMismatch(t *testing.T) {
	ix, err := Open(t.TempDir(), 2)
	require.NoError(t, err)

	err = ix.Add([][]float32{{1, 0}, {0, 1}}, []ChunkMetadata{testMeta(0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, mmerrors.ErrLengthMismatch)
}

func TestIndex_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	ix, err := Open(dir, 2)
	require.NoError(t, err)
	require.NoError(t, ix.Add([][]float32{{1, 2}, {3, 4}}, []ChunkMetadata{testMeta(0), testMeta(1)}))

	// Both companion files must exist next to each other.
	assert.FileExists(t, filepath.Join(dir, VectorsFile))
	assert.FileExists(t, filepath.Join(dir, MetadataFile))

	reopened, err := Open(dir, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Count())

	results, err := reopened.Search([]float32{3, 4}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "chunk-1", results[0].ID)
	assert.InDelta(t, 0.0, results[0].Distance, 1e-6)
}

func TestIndex_ReopenWithDifferentDimensionFails(t *testing.T) {
	dir := t.TempDir()

	ix, err := Open(dir, 2)
	require.NoError(t, err)
	require.NoError(t, ix.Add([][]float32{{1, 2}}, []ChunkMetadata{testMeta(0)}))

	_, err = Open(dir, 5)
	assert.Error(t, err)
}

func TestIndex_MetadataListing(t *testing.T) {
	ix, err := Open(t.TempDir(), 2)
	require.NoError(t, err)
	require.NoError(t, ix.Add([][]float32{{1, 0}}, []ChunkMetadata{testMeta(7)}))

	meta := ix.Metadata()
	require.Len(t, meta, 1)
	assert.Equal(t, 7, meta[0].ChunkID)

	// Returned slice is a copy; mutating it must not touch the index.
	meta[0].Filename = "changed"
	assert.Equal(t, "notes.txt", ix.Metadata()[0].Filename)
}

func TestIndex_EmptySearch(t *testing.T) {
	ix, err := Open(t.TempDir(), 2)
	require.NoError(t, err)

	results, err := ix.Search([]float32{0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
