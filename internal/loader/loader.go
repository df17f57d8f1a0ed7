package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

var (
	// ErrDirNotFound is returned when the input directory does not exist.
	ErrDirNotFound = errors.New("input directory not found")
	// ErrUnsupportedType is returned for file extensions the loader cannot read.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// supportedExtensions lists the file types the loader understands.
var supportedExtensions = map[string]bool{
	".txt": true,
	".pdf": true,
}

// ListDocuments returns the supported document files directly inside dir,
// sorted by name for a stable processing order.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if supportedExtensions[ext] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadDocument extracts the text content of a single file.
func ReadDocument(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return readPDF(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}

// LoadDocuments reads every supported file in dir. Read failures do not
// abort the batch: the failing document is returned unreadable with a
// reason, so the pipeline can report it as Unclassifiable.
func LoadDocuments(dir string) ([]types.Document, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}

	docs := make([]types.Document, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)

		text, err := ReadDocument(path)
		if err != nil {
			docs = append(docs, types.Document{
				FileName: name,
				Readable: false,
				Reason:   err.Error(),
			})
			continue
		}

		// A blank file still read fine; the classifier decides what an
		// empty text is. Only actual read failures are unreadable.
		docs = append(docs, types.Document{
			FileName: name,
			Text:     Clean(text),
			Readable: true,
		})
	}
	return docs, nil
}

// readPDF extracts plain text from a PDF file.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
