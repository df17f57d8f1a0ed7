// Package classifier assigns document text to one of the fixed content
// categories: Invoice, Resume, Utility Bill, or Other.
//
// Classification runs an ordered rule cascade with first-match-wins
// semantics:
//
//  1. blank text -> Other, confidence 0
//  2. cover-letter phrases -> Other (cover letters overlap resume vocabulary,
//     so this rule runs first)
//  3. resume keywords, unless assessment vocabulary is present
//  4. utility-bill keywords
//  5. embedding similarity against per-category prototype phrases
//
// The cascade is a data structure, so the precedence contract is testable
// independently of the embedding step.
//
// Classify never fails: embedding errors, empty inputs, and defensive
// out-of-range conditions all degrade to {Other, 0.0}. The sentinel
// Unclassifiable category is reserved for unreadable inputs and is assigned
// upstream, never here.
package classifier
