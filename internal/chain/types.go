package chain

import (
	"time"

	"github.com/goodnatureofminers/hashchain/internal/hasher"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics receives mining and validation observations.
	Metrics interface {
		ObserveMine(attempts uint64, started time.Time)
		ObserveValidation(err error, blocks int, started time.Time)
	}
	// Progress receives every hash attempt made while mining.
	Progress interface {
		Attempt(sequence, nonce uint64, digest hasher.Digest)
	}
)
