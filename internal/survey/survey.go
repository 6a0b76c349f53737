// Package survey measures how many attempts proof-of-work mining takes at
// each difficulty level and compares it with the expected 16^difficulty.
package survey

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/goodnatureofminers/hashchain/internal/chain"
	"github.com/goodnatureofminers/hashchain/pkg/workerpool"
	"go.uber.org/zap"
)

// Result summarizes the samples mined at one difficulty.
type Result struct {
	Difficulty   int
	Samples      int
	MeanAttempts float64
	MinAttempts  uint64
	MaxAttempts  uint64
	// Expected is the mean number of attempts for a uniformly distributed digest.
	Expected float64
}

// Ratio returns the observed mean relative to the expected mean.
func (r Result) Ratio() float64 {
	if r.Expected == 0 {
		return 0
	}
	return r.MeanAttempts / r.Expected
}

// Service mines independent genesis blocks in parallel. Every block is mined
// by exactly one worker.
type Service struct {
	logger     *zap.Logger
	newMetrics func(difficulty int) chain.Metrics
	workers    int
	samples    int
}

// NewService builds a survey Service.
func NewService(logger *zap.Logger, newMetrics func(difficulty int) chain.Metrics, workers, samples int) (*Service, error) {
	if newMetrics == nil {
		return nil, errors.New("survey metrics factory is required")
	}
	if samples < 1 {
		return nil, fmt.Errorf("survey needs at least one sample, got %d", samples)
	}
	return &Service{
		logger:     logger,
		newMetrics: newMetrics,
		workers:    workers,
		samples:    samples,
	}, nil
}

// Run surveys each difficulty in turn.
func (s *Service) Run(ctx context.Context, difficulties []int) ([]Result, error) {
	results := make([]Result, 0, len(difficulties))
	for _, d := range difficulties {
		r, err := s.survey(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("survey difficulty %d: %w", d, err)
		}
		s.logger.Info("difficulty surveyed",
			zap.Int("difficulty", r.Difficulty),
			zap.Int("samples", r.Samples),
			zap.Float64("mean_attempts", r.MeanAttempts),
			zap.Float64("expected_attempts", r.Expected),
		)
		results = append(results, r)
	}
	return results, nil
}

func (s *Service) survey(ctx context.Context, difficulty int) (Result, error) {
	engine, err := chain.New(
		chain.Config{Difficulty: difficulty},
		s.logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel)),
		s.newMetrics(difficulty),
	)
	if err != nil {
		return Result{}, err
	}

	payloads := make([]string, s.samples)
	for i := range payloads {
		payloads[i] = fmt.Sprintf("sample %d", i)
	}

	attempts, err := workerpool.Map(ctx, s.workers, payloads, func(ctx context.Context, payload string) (uint64, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		b, err := engine.CreateBlock(payload, nil)
		if err != nil {
			return 0, err
		}
		return b.Nonce + 1, nil
	})
	if err != nil {
		return Result{}, err
	}

	r := Result{
		Difficulty:  difficulty,
		Samples:     len(attempts),
		MinAttempts: math.MaxUint64,
		Expected:    math.Pow(16, float64(difficulty)),
	}
	var total float64
	for _, a := range attempts {
		total += float64(a)
		r.MinAttempts = min(r.MinAttempts, a)
		r.MaxAttempts = max(r.MaxAttempts, a)
	}
	r.MeanAttempts = total / float64(len(attempts))
	return r, nil
}
