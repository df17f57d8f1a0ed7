package classifier

import (
	"strings"
	"unicode"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

// Fixed confidences for the heuristic rules.
const (
	coverLetterConfidence = 0.75
	resumeConfidence      = 0.95
	utilityConfidence     = 0.85
)

// Keyword sets backing the heuristic cascade. These are deliberately small
// and high precision; anything they miss falls through to the embedding
// similarity step.
var (
	coverLetterPhrases = []string{
		"cover letter",
		"dear ",
		"hiring manager",
		"sincerely",
		"apply for",
		"position at",
		"excited to apply",
	}

	// Assessment vocabulary disqualifies the resume rule: technical
	// assessment documents mention skills and experience too.
	assessmentTerms = []string{
		"assessment",
		"take-home",
		"technical task",
		"deliverable",
		"requirements",
	}

	resumeKeywords = []string{
		"email",
		"phone",
		"experience",
		"skills",
		"curriculum vitae",
	}

	resumeTitleTerms = []string{
		"resume",
		"curriculum vitae",
	}

	utilityKeywords = []string{
		"account number",
		"usage",
		"kwh",
		"amount due",
		"billing date",
		"utility",
		"meter",
		"provider",
	}
)

// rule is one step of the classification cascade. Rules are evaluated in
// slice order with first-match-wins semantics; apply reports whether the
// rule fired.
type rule struct {
	name  string
	apply func(lower string) (types.ClassificationResult, bool)
}

// heuristicRules returns the deterministic part of the cascade in priority
// order. The cover-letter rule must precede the resume rule: cover letters
// share enough resume vocabulary to trip it otherwise.
func heuristicRules() []rule {
	return []rule{
		{name: "blank", apply: blankRule},
		{name: "cover_letter", apply: coverLetterRule},
		{name: "resume", apply: resumeRule},
		{name: "utility_bill", apply: utilityBillRule},
	}
}

func blankRule(lower string) (types.ClassificationResult, bool) {
	if strings.TrimSpace(lower) == "" {
		return types.ClassificationResult{Label: types.CategoryOther, Confidence: 0.0}, true
	}
	return types.ClassificationResult{}, false
}

func coverLetterRule(lower string) (types.ClassificationResult, bool) {
	if countPhrases(lower, coverLetterPhrases) >= 2 {
		return types.ClassificationResult{Label: types.CategoryOther, Confidence: coverLetterConfidence}, true
	}
	return types.ClassificationResult{}, false
}

func resumeRule(lower string) (types.ClassificationResult, bool) {
	for _, term := range assessmentTerms {
		if strings.Contains(lower, term) {
			return types.ClassificationResult{}, false
		}
	}

	count := countPhrases(lower, resumeKeywords)
	if containsWord(lower, "cv") {
		count++
	}

	title := containsWord(lower, "cv")
	for _, term := range resumeTitleTerms {
		if strings.Contains(lower, term) {
			title = true
			break
		}
	}

	if (title && count >= 2) || count >= 3 {
		return types.ClassificationResult{Label: types.CategoryResume, Confidence: resumeConfidence}, true
	}
	return types.ClassificationResult{}, false
}

func utilityBillRule(lower string) (types.ClassificationResult, bool) {
	if countPhrases(lower, utilityKeywords) >= 2 {
		return types.ClassificationResult{Label: types.CategoryUtilityBill, Confidence: utilityConfidence}, true
	}
	return types.ClassificationResult{}, false
}

// countPhrases counts how many distinct phrases occur in lower.
func countPhrases(lower string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			count++
		}
	}
	return count
}

// containsWord reports whether word occurs in lower bounded by
// non-alphanumeric characters. Plain substring matching would let "cv"
// match inside unrelated words.
func containsWord(lower, word string) bool {
	for start := 0; ; {
		i := strings.Index(lower[start:], word)
		if i < 0 {
			return false
		}
		i += start

		before := i == 0 || !isWordChar(rune(lower[i-1]))
		afterIdx := i + len(word)
		after := afterIdx >= len(lower) || !isWordChar(rune(lower[afterIdx]))
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
