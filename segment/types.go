package segment

import "errors"

// ExhaustiveLimit is the largest id count searched exhaustively.
const ExhaustiveLimit = 10

var (
	// ErrEmptyInput indicates an empty id sequence.
	ErrEmptyInput = errors.New("segment: empty id sequence")

	// ErrInvalidBins indicates bins < 1 or bins greater than the id count.
	ErrInvalidBins = errors.New("segment: bin count out of range")

	// ErrUnknownCategory indicates an id absent from the descriptor set.
	ErrUnknownCategory = errors.New("segment: id missing from category descriptors")

	// ErrDuplicateID indicates an id that occurs more than once.
	ErrDuplicateID = errors.New("segment: duplicate id")
)
