package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricAmount converts a reserve-scale integer for counter use. Amounts may
// exceed the int64 range, so the conversion goes through big.Float instead of
// Int64, which panics past 2^63.
func metricAmount(x math.Int) float64 {
	f, _ := new(big.Float).SetInt(x.BigInt()).Float64()
	return f
}

// PairMetrics holds all Prometheus metrics for the pair module
type PairMetrics struct {
	// Swap metrics
	SwapsComputed   *prometheus.CounterVec
	SwapSpreadRatio prometheus.Histogram
	SwapVolume      *prometheus.CounterVec

	// Quote metrics
	QuotesServed *prometheus.CounterVec
	VeilDraws    prometheus.Counter

	// Liquidity metrics
	SharesMinted prometheus.Counter
	SharesBurned prometheus.Counter

	// Guard metrics
	GuardRejections *prometheus.CounterVec
}

var (
	pairMetricsOnce sync.Once
	pairMetrics     *PairMetrics
)

// NewPairMetrics creates and registers pair metrics (singleton pattern)
func NewPairMetrics() *PairMetrics {
	pairMetricsOnce.Do(func() {
		pairMetrics = &PairMetrics{
			SwapsComputed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "swaps_computed_total",
					Help:      "Total number of swap computations",
				},
				[]string{"status"},
			),
			SwapSpreadRatio: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "swap_spread_ratio",
					Help:      "Realized spread as a fraction of gross return",
					Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
				},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "swap_volume_total",
					Help:      "Cumulative swap volume per asset and direction",
				},
				[]string{"asset", "direction"},
			),
			QuotesServed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "quotes_served_total",
					Help:      "Observer queries served, by kind",
				},
				[]string{"kind"},
			),
			VeilDraws: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "veil_draws_total",
					Help:      "Entropy draws consumed by observer queries",
				},
			),
			SharesMinted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "shares_minted_total",
					Help:      "Liquidity shares minted by deposits",
				},
			),
			SharesBurned: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "shares_burned_total",
					Help:      "Liquidity shares burned by withdrawals",
				},
			),
			GuardRejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veil",
					Subsystem: "pair",
					Name:      "guard_rejections_total",
					Help:      "Economic guard rejections, by guard",
				},
				[]string{"guard"},
			),
		}
	})
	return pairMetrics
}

// GetPairMetrics returns the singleton pair metrics instance
func GetPairMetrics() *PairMetrics {
	if pairMetrics == nil {
		return NewPairMetrics()
	}
	return pairMetrics
}
