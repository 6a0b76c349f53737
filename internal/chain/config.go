package chain

import (
	"fmt"

	"github.com/goodnatureofminers/hashchain/internal/hasher"
)

// Config is fixed for the lifetime of an Engine.
type Config struct {
	// Difficulty is the number of leading zero hex digits a mined digest needs.
	Difficulty int
	// TailDisplay is the number of trailing hex digits kept when abbreviating.
	TailDisplay int
	// Verbose enables per-attempt progress reporting while mining.
	Verbose bool
}

// Validate rejects configurations that cannot be rendered or mined.
func (c Config) Validate() error {
	if c.Difficulty <= 0 {
		return fmt.Errorf("%w: difficulty must be positive, got %d", ErrInvalidConfig, c.Difficulty)
	}
	if c.TailDisplay < 0 {
		return fmt.Errorf("%w: tail display must not be negative, got %d", ErrInvalidConfig, c.TailDisplay)
	}
	if c.Difficulty+c.TailDisplay > hasher.HexLen {
		return fmt.Errorf("%w: difficulty %d plus tail display %d exceeds digest length %d",
			ErrInvalidConfig, c.Difficulty, c.TailDisplay, hasher.HexLen)
	}
	return nil
}
