package chain

import (
	"fmt"
	"strings"
)

const ellipsis = "..."

// Abbreviate keeps the first head and last tail characters of h joined by an
// ellipsis. When that would not shorten h, h is returned unchanged.
func Abbreviate(h string, head, tail int) string {
	if head < 0 || tail < 0 || head >= len(h)-tail {
		return h
	}
	return h[:head] + ellipsis + h[len(h)-tail:]
}

// Abbreviate shortens h using the configured difficulty and tail display.
func (e *Engine) Abbreviate(h string) string {
	return Abbreviate(h, e.cfg.Difficulty, e.cfg.TailDisplay)
}

// Render describes b on several lines, one field per line.
func (e *Engine) Render(b *Block) string {
	prev := "None (genesis block)"
	if b.PrevDigest != nil {
		prev = e.Abbreviate(b.PrevDigest.String())
	}
	digest := "unsealed"
	if b.Digest != nil {
		digest = e.Abbreviate(b.Digest.String())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "| Block No. %d\n", b.Sequence)
	fmt.Fprintf(&sb, "| Previous Hash: %s\n", prev)
	fmt.Fprintf(&sb, "| Nonce: %d\n", b.Nonce)
	fmt.Fprintf(&sb, "| Hash: %s\n", digest)
	fmt.Fprintf(&sb, "| Message: %s", b.Payload)
	return sb.String()
}
