package loader

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{2,}`)
)

// unicodeReplacer maps typographic characters that word processors emit to
// their ASCII equivalents, keeping the downstream regex extraction simple.
var unicodeReplacer = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"“", `"`, // left smart quote
	"”", `"`, // right smart quote
	"‘", "'", // left smart apostrophe
	"’", "'", // right smart apostrophe
	" ", " ", // non-breaking space
)

// Clean normalizes extracted text: Windows line endings become newlines,
// runs of spaces and blank lines collapse, typographic punctuation maps to
// ASCII, and each line is trimmed. Line structure is preserved because the
// classifier's similarity fallback chunks by line.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = unicodeReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRuns.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = newlineRuns.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
