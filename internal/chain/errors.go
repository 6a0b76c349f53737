package chain

import "errors"

var (
	// ErrInvalidConfig is returned when the engine configuration cannot work.
	ErrInvalidConfig = errors.New("invalid chain config")
	// ErrInvalidPredecessor is returned when a block cannot extend the given predecessor.
	ErrInvalidPredecessor = errors.New("invalid predecessor block")

	ErrNilBlock              = errors.New("nil block")
	ErrMissingDigest         = errors.New("block has no digest")
	ErrDigestMismatch        = errors.New("digest does not match block content")
	ErrInsufficientWork      = errors.New("digest does not meet difficulty")
	ErrSequenceGap           = errors.New("sequence does not follow predecessor")
	ErrBrokenLink            = errors.New("previous digest does not match predecessor")
	ErrUnexpectedPredecessor = errors.New("first block must not reference a predecessor")
	ErrMissingPredecessor    = errors.New("non-genesis block must reference a predecessor")
)
