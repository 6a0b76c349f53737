package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mineBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashchain",
		Subsystem: "miner",
		Name:      "blocks_total",
		Help:      "Count of mined blocks.",
	}, []string{"difficulty"})

	mineAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashchain",
		Subsystem: "miner",
		Name:      "attempts_total",
		Help:      "Count of hash attempts made while mining.",
	}, []string{"difficulty"})

	mineAttemptsPerBlock = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashchain",
		Subsystem: "miner",
		Name:      "attempts_per_block",
		Help:      "Number of hash attempts needed to mine a single block.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 14), // 1..4^13
	}, []string{"difficulty"})

	mineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashchain",
		Subsystem: "miner",
		Name:      "mine_duration_seconds",
		Help:      "Duration of mining a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"difficulty"})

	validationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashchain",
		Subsystem: "validator",
		Name:      "validations_total",
		Help:      "Count of chain validations.",
	}, []string{"difficulty", "status"})

	validationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashchain",
		Subsystem: "validator",
		Name:      "validation_duration_seconds",
		Help:      "Duration of validating a run of blocks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"difficulty", "status"})

	validationBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashchain",
		Subsystem: "validator",
		Name:      "validation_blocks",
		Help:      "Number of blocks per validation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"difficulty"})
)

// Chain records mining and validation for one difficulty level.
type Chain struct {
	difficulty string
}

func NewChain(difficulty int) *Chain {
	return &Chain{difficulty: strconv.Itoa(difficulty)}
}

func (m Chain) ObserveMine(attempts uint64, started time.Time) {
	mineBlocksTotal.WithLabelValues(m.difficulty).Inc()
	mineAttemptsTotal.WithLabelValues(m.difficulty).Add(float64(attempts))
	mineAttemptsPerBlock.WithLabelValues(m.difficulty).Observe(float64(attempts))
	mineDuration.WithLabelValues(m.difficulty).Observe(time.Since(started).Seconds())
}

func (m Chain) ObserveValidation(err error, blocks int, started time.Time) {
	status := "valid"
	if err != nil {
		status = "invalid"
	}
	validationTotal.WithLabelValues(m.difficulty, status).Inc()
	validationDuration.WithLabelValues(m.difficulty, status).Observe(time.Since(started).Seconds())
	validationBlocks.WithLabelValues(m.difficulty).Observe(float64(blocks))
}
