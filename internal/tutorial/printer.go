package tutorial

import (
	"io"

	"github.com/pterm/pterm"
)

// Printer renders tour output.
type Printer interface {
	Section(title string)
	Text(text string)
	Block(title, body string)
	Verdict(ok bool, text string)
}

// TermPrinter renders the tour with pterm styling.
type TermPrinter struct {
	out io.Writer
}

// NewTermPrinter builds a TermPrinter writing to out.
func NewTermPrinter(out io.Writer) *TermPrinter {
	return &TermPrinter{out: out}
}

func (p *TermPrinter) Section(title string) {
	pterm.Fprintln(p.out, pterm.DefaultSection.Sprint(title))
}

func (p *TermPrinter) Text(text string) {
	pterm.Fprintln(p.out, text)
}

func (p *TermPrinter) Block(title, body string) {
	box := pterm.DefaultBox.WithTitle(pterm.LightCyan(title)).WithTitleTopLeft().WithHorizontalPadding(2)
	pterm.Fprintln(p.out, box.Sprint(body))
}

func (p *TermPrinter) Verdict(ok bool, text string) {
	if ok {
		pterm.Fprintln(p.out, pterm.Success.Sprint(text))
		return
	}
	pterm.Fprintln(p.out, pterm.Error.Sprint(text))
}
