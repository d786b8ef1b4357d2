package vectorindex

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// vectorsMagic identifies the binary vector file format.
const vectorsMagic uint32 = 0x4d4d5649 // "MMVI"

// persistLocked rewrites both index files. Callers must hold the write
// lock. The vector file is written before the metadata file, and each
// write goes through a temp file renamed into place, so an interrupted
// persist leaves the previous consistent pair on disk and metadata can
// never get ahead of vectors.
func (ix *Index) persistLocked() error {
	if err := ix.writeVectors(); err != nil {
		return fmt.Errorf("writing vector file: %w", err)
	}
	if err := ix.writeMetadata(); err != nil {
		return fmt.Errorf("writing metadata file: %w", err)
	}
	return nil
}

// writeVectors serializes the vector slab: magic, dimension, count, then
// the float32 data in little-endian row order.
func (ix *Index) writeVectors() error {
	path := filepath.Join(ix.dir, VectorsFile)

	return atomicWrite(path, func(w io.Writer) error {
		header := []uint32{vectorsMagic, uint32(ix.dimension), uint32(len(ix.vectors))}
		for _, v := range header {
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return err
			}
		}
		for _, vec := range ix.vectors {
			if err := binary.Write(w, binary.LittleEndian, vec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeMetadata serializes the metadata sequence as a JSON array.
func (ix *Index) writeMetadata() error {
	path := filepath.Join(ix.dir, MetadataFile)

	return atomicWrite(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ix.metadata)
	})
}

// atomicWrite writes via a temp file in the same directory and renames
// it into place.
func atomicWrite(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	buf := bufio.NewWriter(tmp)
	if err := write(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// load reads the persisted pair if present. A missing vector file means
// an empty index. A vector file without readable metadata, or counts
// that disagree, indicate a desynchronized pair - unrecoverable without
// manual repair, so load fails rather than guessing.
func (ix *Index) load() error {
	vectorPath := filepath.Join(ix.dir, VectorsFile)

	f, err := os.Open(vectorPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening vector file: %w", err)
	}
	defer f.Close()

	if err := ix.readVectors(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("reading vector file: %w", err)
	}

	metaPath := filepath.Join(ix.dir, MetadataFile)
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return fmt.Errorf("reading metadata file: %w", err)
	}
	if err := json.Unmarshal(data, &ix.metadata); err != nil {
		return fmt.Errorf("parsing metadata file: %w", err)
	}

	if len(ix.metadata) != len(ix.vectors) {
		return fmt.Errorf("index desynchronized: %d vectors, %d metadata entries; manual repair required",
			len(ix.vectors), len(ix.metadata))
	}

	return nil
}

// readVectors parses the binary vector slab and validates the header
// against the configured dimension.
func (ix *Index) readVectors(r io.Reader) error {
	var header [3]uint32
	for i := range header {
		if err := binary.Read(r, binary.LittleEndian, &header[i]); err != nil {
			return err
		}
	}

	if header[0] != vectorsMagic {
		return fmt.Errorf("unrecognized vector file format")
	}
	if int(header[1]) != ix.dimension {
		return fmt.Errorf("stored dimension %d does not match configured %d", header[1], ix.dimension)
	}

	count := int(header[2])
	ix.vectors = make([][]float32, 0, count)
	for i := 0; i < count; i++ {
		vec := make([]float32, ix.dimension)
		if err := binary.Read(r, binary.LittleEndian, vec); err != nil {
			return err
		}
		ix.vectors = append(ix.vectors, vec)
	}

	return nil
}
