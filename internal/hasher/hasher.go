// Package hasher computes block digests over the canonical block content.
package hasher

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HexLen is the length of a digest rendered as hexadecimal.
const HexLen = chainhash.HashSize * 2

// Digest is a SHA-256 fingerprint of block content.
type Digest [chainhash.HashSize]byte

// String returns the lowercase hex form in natural byte order.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes a hex digest as produced by Digest.String.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != HexLen {
		return d, fmt.Errorf("digest must be %d hex characters, got %d", HexLen, len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("decode digest: %w", err)
	}
	return d, nil
}

// Content is the ordered tuple a digest is computed over. Creation time is
// not part of it, so a digest can be re-derived from the remaining fields at
// any later point.
type Content struct {
	Payload    string
	Sequence   uint64
	PrevDigest *Digest
	Nonce      uint64
}

// Sum hashes the canonical encoding of c.
func Sum(c Content) Digest {
	return Digest(chainhash.HashH(encode(c)))
}

// encode writes c as length-prefixed little-endian fields so that no two
// distinct tuples share an encoding.
func encode(c Content) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 8+len(c.Payload)+8+1+chainhash.HashSize+8))
	writeUint64(buf, uint64(len(c.Payload)))
	buf.WriteString(c.Payload)
	writeUint64(buf, c.Sequence)
	if c.PrevDigest == nil {
		buf.WriteByte(0)
	} else {
		buf.WriteByte(1)
		buf.Write(c.PrevDigest[:])
	}
	writeUint64(buf, c.Nonce)
	return buf.Bytes()
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}
