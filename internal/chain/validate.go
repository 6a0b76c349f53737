package chain

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// Report is the outcome of validating an ordered run of blocks.
type Report struct {
	Valid bool
	// FirstInvalid is the index of the first failing block, or -1.
	FirstInvalid int
	// Err describes why FirstInvalid failed. It wraps one of the Err*
	// sentinels of this package.
	Err error
}

// FirstInvalidIndex returns the failing index and whether there is one.
func (r Report) FirstInvalidIndex() (int, bool) {
	if r.Valid {
		return 0, false
	}
	return r.FirstInvalid, true
}

// Validate checks every block's digest against its own fields and the
// difficulty, and every adjacent pair for sequence and digest linkage. It
// stops at the first failure. An empty run is valid.
func (e *Engine) Validate(blocks []*Block) Report {
	started := time.Now()
	report := Report{Valid: true, FirstInvalid: -1}
	for i, b := range blocks {
		var prev *Block
		if i > 0 {
			prev = blocks[i-1]
		}
		if err := e.validateBlock(i, b, prev); err != nil {
			report = Report{FirstInvalid: i, Err: err}
			break
		}
	}

	e.metrics.ObserveValidation(report.Err, len(blocks), started)
	if !report.Valid {
		e.logger.Info("chain validation failed",
			zap.Int("blocks", len(blocks)),
			zap.Int("first_invalid", report.FirstInvalid),
			zap.Error(report.Err),
		)
	}
	return report
}

func (e *Engine) validateBlock(i int, b, prev *Block) error {
	if b == nil {
		return fmt.Errorf("block at index %d: %w", i, ErrNilBlock)
	}
	if b.Digest == nil {
		return fmt.Errorf("block %d: %w", b.Sequence, ErrMissingDigest)
	}
	if want := b.Hash(); want != *b.Digest {
		return fmt.Errorf("block %d: %w: stored %s, computed %s", b.Sequence, ErrDigestMismatch, b.Digest, want)
	}
	if !e.MeetsTarget(*b.Digest) {
		return fmt.Errorf("block %d: %w: %s", b.Sequence, ErrInsufficientWork, b.Digest)
	}

	if prev == nil {
		if b.Sequence == 0 && b.PrevDigest != nil {
			return fmt.Errorf("block %d: %w", b.Sequence, ErrUnexpectedPredecessor)
		}
		if b.Sequence != 0 && b.PrevDigest == nil {
			return fmt.Errorf("block %d: %w", b.Sequence, ErrMissingPredecessor)
		}
		return nil
	}
	if prev.Sequence == math.MaxUint64 || b.Sequence != prev.Sequence+1 {
		return fmt.Errorf("block %d: %w: predecessor is %d", b.Sequence, ErrSequenceGap, prev.Sequence)
	}
	if b.PrevDigest == nil || prev.Digest == nil || *b.PrevDigest != *prev.Digest {
		return fmt.Errorf("block %d: %w", b.Sequence, ErrBrokenLink)
	}
	return nil
}
