package types

// Document represents a single input document produced by the loader.
// It is immutable once handed to the classification or retrieval core.
type Document struct {
	// FileName is the document identifier (base name of the source file).
	FileName string

	// Text is the extracted raw text. Empty when the document is unreadable.
	Text string

	// Readable reports whether text extraction succeeded upstream.
	Readable bool

	// Reason carries the extraction failure diagnostic for unreadable
	// documents. Empty when Readable is true.
	Reason string

	// Category is the known or previously assigned class, if any.
	Category Category
}

// ClassificationResult is the outcome of classifying a document.
// Label is always one of the fixed categories and Confidence is in [0, 1].
type ClassificationResult struct {
	Label      Category `json:"label"`
	Confidence float64  `json:"confidence"`
}

// Validate checks the result invariants.
func (r ClassificationResult) Validate() error {
	if !r.Label.Valid() {
		return ErrInvalidCategory
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return ErrInvalidConfidence
	}
	return nil
}
