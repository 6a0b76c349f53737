// Package chain builds, mines and validates hash-linked blocks.
package chain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/hashchain/internal/hasher"
	"go.uber.org/zap"
)

// Engine constructs and mines blocks under a fixed Config. It holds no
// mutable state of its own and mines on the calling goroutine.
type Engine struct {
	cfg      Config
	logger   *zap.Logger
	metrics  Metrics
	progress Progress
	now      func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithProgress replaces the default log-based progress sink. It only takes
// effect when Config.Verbose is set.
func WithProgress(p Progress) Option {
	return func(e *Engine) {
		e.progress = p
	}
}

// WithClock overrides the source of block creation times.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New validates cfg and builds an Engine.
func New(cfg Config, logger *zap.Logger, metrics Metrics, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if metrics == nil {
		return nil, errors.New("chain metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.Int("difficulty", cfg.Difficulty))

	e := &Engine{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	switch {
	case !cfg.Verbose:
		e.progress = nil
	case e.progress == nil:
		e.progress = NewLogProgress(logger.Named("progress"))
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

type blockOptions struct {
	mine  bool
	nonce uint64
}

// BlockOption customizes CreateBlock.
type BlockOption func(*blockOptions)

// WithoutMining leaves the new block unsealed. The caller may later call
// Mine or Seal on it.
func WithoutMining() BlockOption {
	return func(o *blockOptions) {
		o.mine = false
	}
}

// WithNonce sets the starting nonce instead of zero.
func WithNonce(nonce uint64) BlockOption {
	return func(o *blockOptions) {
		o.nonce = nonce
	}
}

// CreateBlock builds a block extending previous, or a genesis block when
// previous is nil, and mines it unless WithoutMining is given.
func (e *Engine) CreateBlock(payload string, previous *Block, opts ...BlockOption) (*Block, error) {
	o := blockOptions{mine: true}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Block{
		Payload:   payload,
		Nonce:     o.nonce,
		CreatedAt: e.now(),
	}
	if previous != nil {
		if previous.Digest == nil {
			return nil, fmt.Errorf("%w: block %d has no digest", ErrInvalidPredecessor, previous.Sequence)
		}
		if previous.Sequence == math.MaxUint64 {
			return nil, fmt.Errorf("%w: sequence overflow after block %d", ErrInvalidPredecessor, previous.Sequence)
		}
		prev := *previous.Digest
		b.Sequence = previous.Sequence + 1
		b.PrevDigest = &prev
	}

	if o.mine {
		e.Mine(b)
	}
	return b, nil
}

// Mine searches nonces upward from the block's current nonce until the
// digest meets the difficulty, then records that digest on the block.
// There is no upper bound on the number of attempts.
func (e *Engine) Mine(b *Block) hasher.Digest {
	started := time.Now()
	logger := e.logger.With(zap.Uint64("sequence", b.Sequence))
	logger.Debug("mining block", zap.Uint64("start_nonce", b.Nonce))

	var attempts uint64
	for {
		digest := b.Hash()
		attempts++
		if e.progress != nil {
			e.progress.Attempt(b.Sequence, b.Nonce, digest)
		}
		if e.MeetsTarget(digest) {
			b.Digest = &digest
			e.metrics.ObserveMine(attempts, started)
			logger.Info("block mined",
				zap.Uint64("nonce", b.Nonce),
				zap.Uint64("attempts", attempts),
				zap.Stringer("digest", digest),
				zap.Duration("elapsed", time.Since(started)),
			)
			return digest
		}
		b.Nonce++
	}
}

// Seal records the digest of the block's current fields without mining.
// The result need not meet the difficulty.
func (e *Engine) Seal(b *Block) hasher.Digest {
	digest := b.Hash()
	b.Digest = &digest
	return digest
}

// MeetsTarget reports whether the first Difficulty hex digits of d are zero.
func (e *Engine) MeetsTarget(d hasher.Digest) bool {
	for i := 0; i < e.cfg.Difficulty; i++ {
		nibble := d[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f != 0 {
			return false
		}
	}
	return true
}
