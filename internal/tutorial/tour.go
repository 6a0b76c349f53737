// Package tutorial walks a reader through building, forging and validating
// a small proof-of-work chain.
package tutorial

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/hashchain/internal/chain"
	"go.uber.org/zap"
)

const (
	genesisPayload = "GENESIS"
	forgedPayload  = "GENES1S"
	forgedNonce    = 99999999
	autoBlocks     = 4
)

// Tour is the guided walkthrough. It owns the chain it builds.
type Tour struct {
	engine   *chain.Engine
	chain    *chain.Chain
	printer  Printer
	pacer    Pacer
	prompter Prompter
	logger   *zap.Logger
}

// NewTour builds a Tour on top of engine.
func NewTour(engine *chain.Engine, printer Printer, pacer Pacer, prompter Prompter, logger *zap.Logger) (*Tour, error) {
	if engine == nil {
		return nil, errors.New("tour engine is required")
	}
	if printer == nil || pacer == nil || prompter == nil {
		return nil, errors.New("tour printer, pacer and prompter are required")
	}
	return &Tour{
		engine:   engine,
		chain:    chain.NewChain(engine),
		printer:  printer,
		pacer:    pacer,
		prompter: prompter,
		logger:   logger.Named("tour"),
	}, nil
}

// Chain returns the chain built so far.
func (t *Tour) Chain() *chain.Chain {
	return t.chain
}

// Run plays every step in order and stops at the first error.
func (t *Tour) Run(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{name: "genesis", run: t.genesis},
		{name: "avalanche", run: t.avalanche},
		{name: "user block", run: t.userBlock},
		{name: "more blocks", run: t.moreBlocks},
		{name: "whole chain", run: t.wholeChain},
		{name: "tamper", run: t.tamper},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.logger.Debug("tour step", zap.String("step", step.name))
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("tour step %s: %w", step.name, err)
		}
	}
	return nil
}

func (t *Tour) genesis(ctx context.Context) error {
	cfg := t.engine.Config()
	t.printer.Section("The genesis block")
	t.printer.Text("Every chain starts with a block that has no predecessor. Mining it now.")

	b, err := t.chain.Append(genesisPayload)
	if err != nil {
		return err
	}
	t.printer.Text(fmt.Sprintf(
		"The long hexadecimal number is the block's hash, a fingerprint of its content.\n"+
			"Difficulty is %d here: a block only counts once its hash starts with %d zeros,\n"+
			"so the miner kept raising the nonce until that happened (%d tries).",
		cfg.Difficulty, cfg.Difficulty, b.Nonce+1))
	t.printer.Block("Genesis", t.engine.Render(b))
	return t.pacer.Pause(ctx)
}

func (t *Tour) avalanche(ctx context.Context) error {
	genesis := t.chain.Tip()
	t.printer.Section("Avalanche")
	t.printer.Text("A good hash function changes completely when a single bit of input changes.\n" +
		"Here are two forged copies of the genesis block, hashed but not mined.")

	forgeries := []struct {
		title   string
		payload string
		nonce   uint64
	}{
		{title: "Altered message, same nonce", payload: forgedPayload, nonce: genesis.Nonce},
		{title: "Same message, altered nonce", payload: genesisPayload, nonce: forgedNonce},
	}
	for _, f := range forgeries {
		b, err := t.engine.CreateBlock(f.payload, nil, chain.WithoutMining(), chain.WithNonce(f.nonce))
		if err != nil {
			return err
		}
		d := t.engine.Seal(b)
		t.printer.Block(f.title, t.engine.Render(b))
		t.printer.Text("Full hash: " + d.String())
	}
	t.printer.Text("Original hash:  " + genesis.Digest.String())
	return t.pacer.Pause(ctx)
}

func (t *Tour) userBlock(ctx context.Context) error {
	t.printer.Section("Your block")
	payload, err := t.prompter.Ask(ctx, "Your message")
	if err != nil {
		return err
	}
	b, err := t.chain.Append(payload)
	if err != nil {
		return err
	}
	t.printer.Block(fmt.Sprintf("Block %d", b.Sequence), t.engine.Render(b))
	t.printer.Text("The previous hash field points at the genesis block; that reference is what links the chain.")
	return t.pacer.Pause(ctx)
}

func (t *Tour) moreBlocks(ctx context.Context) error {
	t.printer.Section("A few more blocks")
	for i := 0; i < autoBlocks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := t.chain.Append(fmt.Sprintf("This is block %d", t.chain.Len()+1))
		if err != nil {
			return err
		}
		t.printer.Text(fmt.Sprintf("Mined block %d with nonce %d.", b.Sequence, b.Nonce))
	}
	return t.pacer.Pause(ctx)
}

func (t *Tour) wholeChain(_ context.Context) error {
	t.printer.Section("The whole chain")
	for _, b := range t.chain.Blocks() {
		t.printer.Block(fmt.Sprintf("Block %d", b.Sequence), t.engine.Render(b))
	}
	t.printer.Text("The previous hash of block N always equals the hash of block N-1.")
	return nil
}

func (t *Tour) tamper(ctx context.Context) error {
	t.printer.Section("Tamper evidence")
	t.report("Honest chain", t.chain.Validate())

	forged := make([]*chain.Block, 0, t.chain.Len())
	for _, b := range t.chain.Blocks() {
		c := *b
		forged = append(forged, &c)
	}
	const target = 1
	if len(forged) <= target {
		return nil
	}
	forged[target].Payload += " (edited)"
	t.printer.Text(fmt.Sprintf("Now a copy of the chain with the message of block %d edited but not re-mined.", target))
	t.report("Edited copy", t.engine.Validate(forged))

	t.printer.Text("Re-mining the edited block would change its hash and break the link from the next block,\n" +
		"so a forger would have to redo the work for every block after it.")
	return t.pacer.Pause(ctx)
}

func (t *Tour) report(name string, r chain.Report) {
	if idx, bad := r.FirstInvalidIndex(); bad {
		t.printer.Verdict(false, fmt.Sprintf("%s is invalid from block %d: %v", name, idx, r.Err))
		return
	}
	t.printer.Verdict(true, name+" is valid.")
}
