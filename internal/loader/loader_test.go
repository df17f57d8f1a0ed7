package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "b")
	writeFile(t, dir, "a.txt", "a")
	writeFile(t, dir, "notes.md", "ignored")
	writeFile(t, dir, "scan.pdf", "not a real pdf")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	files, err := ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "a.txt", filepath.Base(files[0]))
	assert.Equal(t, "b.txt", filepath.Base(files[1]))
	assert.Equal(t, "scan.pdf", filepath.Base(files[2]))
}

func TestListDocuments_MissingDir(t *testing.T) {
	_, err := ListDocuments(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrDirNotFound)
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.txt", "hello")

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = ReadDocument(filepath.Join(dir, "doc.docx"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "invoice.txt", "Invoice INV-1001\nTotal: $50.00")
	writeFile(t, dir, "empty.txt", "   \n\n  ")
	writeFile(t, dir, "broken.pdf", "this is not a pdf")

	docs, err := LoadDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	byName := map[string]int{}
	for i, d := range docs {
		byName[d.FileName] = i
	}

	inv := docs[byName["invoice.txt"]]
	assert.True(t, inv.Readable)
	assert.Contains(t, inv.Text, "INV-1001")

	// Blank documents read successfully; emptiness is a classification
	// outcome, not a read failure.
	empty := docs[byName["empty.txt"]]
	assert.True(t, empty.Readable)
	assert.Empty(t, empty.Text)
	assert.Empty(t, empty.Reason)

	// A malformed PDF yields an unreadable document with a reason instead
	// of failing the whole batch.
	broken := docs[byName["broken.pdf"]]
	assert.False(t, broken.Readable)
	assert.NotEmpty(t, broken.Reason)
	assert.Empty(t, broken.Text)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"space runs collapse", "a   b\t\tc", "a b c"},
		{"windows line endings", "a\r\nb\rc", "a\nb\nc"},
		{"blank line runs collapse", "a\n\n\n\nb", "a\nb"},
		{"lines trimmed", "  a  \n  b  ", "a\nb"},
		{"smart punctuation", "it’s “fine” — really", `it's "fine" - really`},
		{"non-breaking space", "a b", "a b"},
		{"surrounding whitespace", "\n\n  text  \n\n", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestClean_PreservesLineStructure(t *testing.T) {
	input := "Account Number: ACC-1\nUsage: 100 kWh\nAmount Due: $20"
	assert.Equal(t, input, Clean(input))
}
