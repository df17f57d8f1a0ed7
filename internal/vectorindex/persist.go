package vectorindex

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

// Persisted artifact layout: the vector file carries a fixed header followed
// by count*dim little-endian float32 values; the metadata file is a JSON
// array of index entries. The two files always version together.
const (
	vectorFileMagic   = uint32(0x41494458) // "AIDX"
	vectorFileVersion = uint32(1)

	// DefaultVectorFile and DefaultMetaFile are the paired artifact names
	// inside an index directory.
	DefaultVectorFile = "vectors.bin"
	DefaultMetaFile   = "metadata.json"
)

var (
	// ErrArtifactMissing is returned by Load when either paired file is absent.
	ErrArtifactMissing = errors.New("index artifact missing")
	// ErrArtifactCorrupt is returned by Load when an artifact cannot be
	// decoded or the pair disagrees on entry count or dimensionality.
	ErrArtifactCorrupt = errors.New("index artifact corrupt")
)

type vectorFileHeader struct {
	Magic     uint32
	Version   uint32
	Dimension uint32
	Count     uint32
}

// Save writes the vector and metadata artifacts as a pair. Each file is
// written to a temporary sibling and renamed into place so a concurrent
// reader never observes a partially written artifact.
func (ix *Index) Save(vectorPath, metaPath string) error {
	if err := writeFileAtomic(vectorPath, ix.encodeVectors()); err != nil {
		return fmt.Errorf("write vector artifact: %w", err)
	}

	metaBytes, err := json.Marshal(ix.entries)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := writeFileAtomic(metaPath, metaBytes); err != nil {
		return fmt.Errorf("write metadata artifact: %w", err)
	}
	return nil
}

// Load replaces the index contents from a previously saved artifact pair.
// Both files are decoded and validated in full before any in-memory state is
// touched; on any failure the index is left exactly as it was.
func (ix *Index) Load(vectorPath, metaPath string) error {
	vecBytes, err := os.ReadFile(vectorPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrArtifactMissing, vectorPath)
		}
		return fmt.Errorf("read vector artifact: %w", err)
	}
	metaBytes, err := os.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrArtifactMissing, metaPath)
		}
		return fmt.Errorf("read metadata artifact: %w", err)
	}

	dim, vectors, err := decodeVectors(vecBytes)
	if err != nil {
		return err
	}
	if dim != ix.dim {
		return fmt.Errorf("%w: stored dimension %d, index dimension %d", ErrArtifactCorrupt, dim, ix.dim)
	}

	var entries []types.IndexEntry
	if err := json.Unmarshal(metaBytes, &entries); err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactCorrupt, err)
	}
	if len(entries) != len(vectors) {
		return fmt.Errorf("%w: %d vectors but %d metadata entries", ErrArtifactCorrupt, len(vectors), len(entries))
	}

	ix.vectors = vectors
	ix.entries = entries
	return nil
}

// encodeVectors serializes the vector collection with its header.
func (ix *Index) encodeVectors() []byte {
	buf := make([]byte, 16+len(ix.vectors)*ix.dim*4)
	binary.LittleEndian.PutUint32(buf[0:], vectorFileMagic)
	binary.LittleEndian.PutUint32(buf[4:], vectorFileVersion)
	binary.LittleEndian.PutUint32(buf[8:], uint32(ix.dim))
	binary.LittleEndian.PutUint32(buf[12:], uint32(len(ix.vectors)))

	off := 16
	for _, vec := range ix.vectors {
		for _, v := range vec {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
			off += 4
		}
	}
	return buf
}

// decodeVectors parses and validates a vector artifact.
func decodeVectors(data []byte) (int, [][]float32, error) {
	if len(data) < 16 {
		return 0, nil, fmt.Errorf("%w: vector artifact truncated", ErrArtifactCorrupt)
	}

	hdr := vectorFileHeader{
		Magic:     binary.LittleEndian.Uint32(data[0:]),
		Version:   binary.LittleEndian.Uint32(data[4:]),
		Dimension: binary.LittleEndian.Uint32(data[8:]),
		Count:     binary.LittleEndian.Uint32(data[12:]),
	}
	if hdr.Magic != vectorFileMagic {
		return 0, nil, fmt.Errorf("%w: bad magic", ErrArtifactCorrupt)
	}
	if hdr.Version != vectorFileVersion {
		return 0, nil, fmt.Errorf("%w: unsupported version %d", ErrArtifactCorrupt, hdr.Version)
	}

	dim := int(hdr.Dimension)
	count := int(hdr.Count)
	if dim <= 0 {
		return 0, nil, fmt.Errorf("%w: stored dimension %d", ErrArtifactCorrupt, dim)
	}
	want := 16 + count*dim*4
	if len(data) != want {
		return 0, nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrArtifactCorrupt, want, len(data))
	}

	vectors := make([][]float32, count)
	off := 16
	for i := range vectors {
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
			off += 4
		}
		vectors[i] = vec
	}
	return dim, vectors, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
