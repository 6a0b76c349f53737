package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviate(t *testing.T) {
	t.Parallel()

	full := genesisDigest
	tests := []struct {
		name string
		h    string
		head int
		tail int
		want string
	}{
		{name: "default display", h: full, head: 3, tail: 4, want: "000...a2b3"},
		{name: "no tail", h: full, head: 3, tail: 0, want: "000..."},
		{name: "head equals length minus tail", h: full, head: 60, tail: 4, want: full},
		{name: "head one below the boundary", h: full, head: 59, tail: 4, want: full[:59] + "..." + full[60:]},
		{name: "short input", h: "abc", head: 3, tail: 4, want: "abc"},
		{name: "empty input", h: "", head: 3, tail: 4, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Abbreviate(tt.h, tt.head, tt.tail))
		})
	}
}

func TestEngine_Render(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, Config{Difficulty: 3, TailDisplay: 4})

	genesis, err := e.CreateBlock("GENESIS", nil, WithNonce(2086))
	require.NoError(t, err)
	second, err := e.CreateBlock("hello", genesis, WithNonce(1874))
	require.NoError(t, err)
	draft, err := e.CreateBlock("draft", second, WithoutMining())
	require.NoError(t, err)

	tests := []struct {
		name  string
		block *Block
		want  string
	}{
		{
			name:  "genesis names no predecessor",
			block: genesis,
			want: strings.Join([]string{
				"| Block No. 0",
				"| Previous Hash: None (genesis block)",
				"| Nonce: 2086",
				"| Hash: 000...a2b3",
				"| Message: GENESIS",
			}, "\n"),
		},
		{
			name:  "linked block",
			block: second,
			want: strings.Join([]string{
				"| Block No. 1",
				"| Previous Hash: 000...a2b3",
				"| Nonce: 1874",
				"| Hash: 000...4649",
				"| Message: hello",
			}, "\n"),
		},
		{
			name:  "unsealed block",
			block: draft,
			want: strings.Join([]string{
				"| Block No. 2",
				"| Previous Hash: 000...4649",
				"| Nonce: 0",
				"| Hash: unsealed",
				"| Message: draft",
			}, "\n"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.Render(tt.block))
		})
	}
}
