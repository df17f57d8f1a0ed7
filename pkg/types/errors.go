package types

import "errors"

// Domain errors for type validation
var (
	ErrInvalidCategory   = errors.New("invalid category label")
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 1")
	ErrInvalidChunkID    = errors.New("invalid chunk ID")
	ErrInvalidPosition   = errors.New("invalid chunk positions")
	ErrEmptyContent      = errors.New("content cannot be empty")
	ErrInvalidDistance   = errors.New("distance must be non-negative")
	ErrInvalidSimilarity = errors.New("similarity must be in (0, 1]")
)
