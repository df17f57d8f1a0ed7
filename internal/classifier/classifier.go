package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ranakb/ai-document-system/internal/embedder"
	"github.com/Ranakb/ai-document-system/pkg/types"
)

// SimilarityThreshold is the low-water mark for the embedding fallback.
// A best similarity below it overrides the predicted category to Other while
// keeping the observed similarity as the confidence.
const SimilarityThreshold = 0.25

// prototypeSet maps each content category to its descriptive anchor phrases.
// Order matters: the flattened phrase list defines the row order of the
// prototype vectors, and ties in the fallback resolve to the earliest row.
var prototypeSet = []struct {
	category types.Category
	phrases  []string
}{
	{types.CategoryInvoice, []string{"Invoice document", "Billing statement", "Invoice from company"}},
	{types.CategoryResume, []string{"Resume", "Curriculum Vitae", "Candidate profile"}},
	{types.CategoryUtilityBill, []string{"Utility bill", "Electricity bill", "Water bill"}},
	{types.CategoryOther, []string{"Other document", "Miscellaneous document"}},
}

// Engine classifies document text into one of the fixed content categories.
// It owns its prototype vectors, computed once at construction; there is no
// package-level model state.
type Engine struct {
	embedder  embedder.Embedder
	rules     []rule
	protoVecs [][]float32
	protoCats []types.Category // row index -> owning category
	threshold float64
}

// New builds a classification engine, embedding the prototype phrases once.
// The embedder is shared read-only with the retrieval engine.
func New(ctx context.Context, emb embedder.Embedder) (*Engine, error) {
	var phrases []string
	var cats []types.Category
	for _, set := range prototypeSet {
		for _, p := range set.phrases {
			phrases = append(phrases, strings.ToLower(p))
			cats = append(cats, set.category)
		}
	}

	vecs, err := emb.EmbedBatch(ctx, phrases)
	if err != nil {
		return nil, fmt.Errorf("embed prototype phrases: %w", err)
	}
	if len(vecs) != len(cats) {
		return nil, fmt.Errorf("prototype embedding count mismatch: %d vectors for %d phrases", len(vecs), len(cats))
	}

	return &Engine{
		embedder:  emb,
		rules:     heuristicRules(),
		protoVecs: vecs,
		protoCats: cats,
		threshold: SimilarityThreshold,
	}, nil
}

// Classify assigns text one of the fixed content categories with a
// confidence in [0, 1]. It is a total function: every input maps to a
// result and internal failures degrade to {Other, 0.0}.
func (e *Engine) Classify(ctx context.Context, text string) types.ClassificationResult {
	lower := strings.ToLower(text)

	for _, r := range e.rules {
		if result, ok := r.apply(lower); ok {
			return result
		}
	}

	return e.classifyBySimilarity(ctx, lower)
}

// classifyBySimilarity is the cascade's final step: compare line-level
// chunks of the text against every prototype vector and commit to the
// category owning the single best similarity.
func (e *Engine) classifyBySimilarity(ctx context.Context, lower string) types.ClassificationResult {
	fallback := types.ClassificationResult{Label: types.CategoryOther, Confidence: 0.0}

	chunks := splitLines(lower)
	if len(chunks) == 0 {
		chunks = []string{lower}
	}

	chunkVecs, err := e.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return fallback
	}

	// Row-major scan (chunk-major, then prototype-major) with a strict
	// greater-than keeps the first maximum on ties.
	best := -2.0
	bestRow := -1
	for _, cv := range chunkVecs {
		for row, pv := range e.protoVecs {
			sim := embedder.CosineSimilarity(cv, pv)
			if sim > best {
				best = sim
				bestRow = row
			}
		}
	}

	if bestRow < 0 || bestRow >= len(e.protoCats) {
		return fallback
	}

	label := e.protoCats[bestRow]
	if best < e.threshold {
		// Safety net, not a hard rejection: the observed similarity is
		// still reported as the confidence.
		label = types.CategoryOther
	}

	return types.ClassificationResult{Label: label, Confidence: clampConfidence(best)}
}

// splitLines returns the trimmed non-empty lines of text.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// clampConfidence bounds a cosine similarity into the confidence range.
func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
