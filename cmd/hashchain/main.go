// Package main runs the hashchain tutorial and the difficulty survey.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/goodnatureofminers/hashchain/internal/chain"
	"github.com/goodnatureofminers/hashchain/internal/hasher"
	"github.com/goodnatureofminers/hashchain/internal/metrics"
	"github.com/goodnatureofminers/hashchain/internal/survey"
	"github.com/goodnatureofminers/hashchain/internal/tutorial"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	modeDemo   = "demo"
	modeSurvey = "survey"
)

type config struct {
	Difficulty  int    `long:"difficulty" env:"HASHCHAIN_DIFFICULTY" default:"3" description:"leading zero hex digits a block hash needs"`
	TailDisplay int    `long:"tail-display" env:"HASHCHAIN_TAIL_DISPLAY" default:"4" description:"trailing hex digits kept when a hash is abbreviated"`
	Verbose     bool   `long:"verbose" env:"HASHCHAIN_VERBOSE" description:"log every mining attempt"`
	Mode        string `long:"mode" env:"HASHCHAIN_MODE" default:"demo" choice:"demo" choice:"survey" description:"what to run"`
	MetricsAddr string `long:"metrics-addr" env:"HASHCHAIN_METRICS_ADDR" description:"serve prometheus metrics on this address"`

	Autoplay     bool          `long:"autoplay" env:"HASHCHAIN_AUTOPLAY" description:"advance the tour without waiting for ENTER"`
	StepInterval time.Duration `long:"step-interval" env:"HASHCHAIN_STEP_INTERVAL" default:"3s" description:"pause between tour steps in autoplay"`
	Message      string        `long:"message" env:"HASHCHAIN_MESSAGE" default:"hello" description:"message of the reader's block in autoplay"`

	SurveySamples       int `long:"survey-samples" env:"HASHCHAIN_SURVEY_SAMPLES" default:"32" description:"blocks mined per difficulty"`
	SurveyMaxDifficulty int `long:"survey-max-difficulty" env:"HASHCHAIN_SURVEY_MAX_DIFFICULTY" default:"4" description:"highest difficulty surveyed"`
	Workers             int `long:"workers" env:"HASHCHAIN_WORKERS" default:"4" description:"survey worker count"`
}

func (c config) chainConfig() chain.Config {
	return chain.Config{
		Difficulty:  c.Difficulty,
		TailDisplay: c.TailDisplay,
		Verbose:     c.Verbose,
	}
}

func parseConfig(args []string) (config, error) {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, args); err != nil {
		return cfg, err
	}
	if err := cfg.chainConfig().Validate(); err != nil {
		return cfg, err
	}
	if cfg.SurveyMaxDifficulty < 1 || cfg.SurveyMaxDifficulty > hasher.HexLen {
		return cfg, fmt.Errorf("survey max difficulty must be within 1..%d, got %d", hasher.HexLen, cfg.SurveyMaxDifficulty)
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		// Mining logs one entry per attempt; keep the first few each second.
		cfg.Sampling = &zap.SamplingConfig{Initial: 20, Thereafter: 1000}
	}
	return cfg.Build()
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		serveMetrics(ctx, cfg.MetricsAddr, logger)
	}

	switch cfg.Mode {
	case modeSurvey:
		err = runSurvey(ctx, cfg, logger)
	default:
		err = runDemo(ctx, cfg, logger)
	}
	if code := exitCode(err); code != 0 {
		logger.Error("run failed", zap.String("mode", cfg.Mode), zap.Error(err))
		_ = logger.Sync()
		stop()
		os.Exit(code)
	}
}

// exitCode maps the result of a run to the process exit status. An
// interrupted run is a clean exit.
func exitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}

func runDemo(ctx context.Context, cfg config, logger *zap.Logger) error {
	engine, err := chain.New(cfg.chainConfig(), logger.Named("chain"), metrics.NewChain(cfg.Difficulty))
	if err != nil {
		return err
	}

	var (
		pacer    tutorial.Pacer
		prompter tutorial.Prompter
	)
	if cfg.Autoplay {
		pacer = tutorial.NewAutoPacer(cfg.StepInterval)
		prompter = tutorial.FixedAnswer(cfg.Message)
	} else {
		in := tutorial.NewLineInput(os.Stdin, os.Stdout)
		pacer, prompter = in, in
	}

	tour, err := tutorial.NewTour(engine, tutorial.NewTermPrinter(os.Stdout), pacer, prompter, logger)
	if err != nil {
		return err
	}

	if err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("hash", pterm.FgLightCyan.ToStyle()),
		putils.LettersFromStringWithStyle("chain", pterm.FgDarkGray.ToStyle()),
	).Render(); err != nil {
		logger.Warn("render banner", zap.Error(err))
	}
	return tour.Run(ctx)
}

func runSurvey(ctx context.Context, cfg config, logger *zap.Logger) error {
	svc, err := survey.NewService(
		logger.Named("survey"),
		func(d int) chain.Metrics { return metrics.NewChain(d) },
		cfg.Workers,
		cfg.SurveySamples,
	)
	if err != nil {
		return err
	}

	difficulties := make([]int, 0, cfg.SurveyMaxDifficulty)
	for d := 1; d <= cfg.SurveyMaxDifficulty; d++ {
		difficulties = append(difficulties, d)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Mining survey blocks...")
	results, err := svc.Run(ctx, difficulties)
	if err != nil {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		return err
	}
	if spinner != nil {
		spinner.Success("Survey finished")
	}

	data := pterm.TableData{{"Difficulty", "Samples", "Mean attempts", "Expected (16^d)", "Min", "Max", "Ratio"}}
	for _, r := range results {
		data = append(data, []string{
			strconv.Itoa(r.Difficulty),
			strconv.Itoa(r.Samples),
			strconv.FormatFloat(r.MeanAttempts, 'f', 1, 64),
			strconv.FormatFloat(r.Expected, 'f', 0, 64),
			strconv.FormatUint(r.MinAttempts, 10),
			strconv.FormatUint(r.MaxAttempts, 10),
			strconv.FormatFloat(r.Ratio(), 'f', 2, 64),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the metrics server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()
}
