package tutorial

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Pacer holds the tour between steps.
	Pacer interface {
		Pause(ctx context.Context) error
	}
	// Prompter asks the reader for a line of text.
	Prompter interface {
		Ask(ctx context.Context, question string) (string, error)
	}
)
