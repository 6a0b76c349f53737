package chain

import (
	"time"

	"github.com/goodnatureofminers/hashchain/internal/hasher"
)

// Block is a single entry of the chain. Only the engine changes Nonce and
// Digest; once a block is mined it is treated as immutable.
type Block struct {
	Sequence   uint64
	Payload    string
	PrevDigest *hasher.Digest
	Nonce      uint64
	CreatedAt  time.Time
	Digest     *hasher.Digest
}

// Content returns the fields the digest is computed over.
func (b *Block) Content() hasher.Content {
	return hasher.Content{
		Payload:    b.Payload,
		Sequence:   b.Sequence,
		PrevDigest: b.PrevDigest,
		Nonce:      b.Nonce,
	}
}

// Hash computes the digest of the block's current fields without storing it.
func (b *Block) Hash() hasher.Digest {
	return hasher.Sum(b.Content())
}

// IsGenesis reports whether the block has no predecessor.
func (b *Block) IsGenesis() bool {
	return b.PrevDigest == nil
}

// IsSealed reports whether a digest has been recorded for the block.
func (b *Block) IsSealed() bool {
	return b.Digest != nil
}
