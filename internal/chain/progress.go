package chain

import (
	"github.com/goodnatureofminers/hashchain/internal/hasher"
	"go.uber.org/zap"
)

// LogProgress reports mining attempts as debug log entries.
type LogProgress struct {
	logger *zap.Logger
}

// NewLogProgress builds a Progress backed by logger.
func NewLogProgress(logger *zap.Logger) *LogProgress {
	return &LogProgress{logger: logger}
}

// Attempt logs a single hash attempt.
func (p *LogProgress) Attempt(sequence, nonce uint64, digest hasher.Digest) {
	p.logger.Debug("mining attempt",
		zap.Uint64("sequence", sequence),
		zap.Uint64("nonce", nonce),
		zap.Stringer("digest", digest),
	)
}
