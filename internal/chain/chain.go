package chain

import "fmt"

// Chain is an append-only sequence of blocks owned by a single writer.
type Chain struct {
	engine *Engine
	blocks []*Block
}

// NewChain creates an empty chain mined by engine.
func NewChain(engine *Engine) *Chain {
	return &Chain{engine: engine}
}

// Append mines a block carrying payload on top of the current tip. The first
// append creates the genesis block.
func (c *Chain) Append(payload string) (*Block, error) {
	b, err := c.engine.CreateBlock(payload, c.Tip())
	if err != nil {
		return nil, fmt.Errorf("append block %d: %w", len(c.blocks), err)
	}
	c.blocks = append(c.blocks, b)
	return b, nil
}

// Tip returns the latest block, or nil for an empty chain.
func (c *Chain) Tip() *Block {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.blocks[len(c.blocks)-1]
}

// Len returns the number of blocks.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Blocks returns a copy of the block list.
func (c *Chain) Blocks() []*Block {
	out := make([]*Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Validate checks the whole chain.
func (c *Chain) Validate() Report {
	return c.engine.Validate(c.blocks)
}
