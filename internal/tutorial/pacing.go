package tutorial

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"go.uber.org/ratelimit"
)

// LineInput reads pauses and answers line by line from a shared reader.
type LineInput struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineInput builds a LineInput. Hints and questions are written to out.
func NewLineInput(in io.Reader, out io.Writer) *LineInput {
	return &LineInput{in: bufio.NewReader(in), out: out}
}

// Pause waits for ENTER. End of input counts as ENTER.
func (l *LineInput) Pause(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pterm.Fprint(l.out, pterm.Gray("[ENTER] "))
	_, err := l.readLine()
	return err
}

// Ask prints question and returns the answer without the line break.
func (l *LineInput) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pterm.Fprint(l.out, pterm.LightYellow(question+": "))
	return l.readLine()
}

func (l *LineInput) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AutoPacer advances the tour on a fixed interval instead of waiting for input.
type AutoPacer struct {
	rl ratelimit.Limiter
}

// NewAutoPacer builds an AutoPacer releasing one step per interval.
func NewAutoPacer(interval time.Duration) *AutoPacer {
	return &AutoPacer{
		rl: ratelimit.New(1, ratelimit.Per(interval), ratelimit.WithoutSlack),
	}
}

func (p *AutoPacer) Pause(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.rl.Take()
	return ctx.Err()
}

// FixedAnswer answers every question with the same text.
type FixedAnswer string

func (a FixedAnswer) Ask(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(a), nil
}
