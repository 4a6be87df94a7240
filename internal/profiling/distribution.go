package profiling

import (
	"fmt"
	"math"

	"pcoslens/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// GroupSummary describes the values of one feature within one class
type GroupSummary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation (n-1); 0 when Count < 2
	Min    float64
	Max    float64
}

// DistributionAnalyzer computes per-group summary statistics
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// Summarize returns mean and sample standard deviation of data.
// An empty group is an error, so callers never see NaN.
func (da *DistributionAnalyzer) Summarize(data []float64) (GroupSummary, error) {
	if len(data) == 0 {
		return GroupSummary{}, core.ErrEmptyGroup
	}

	summary := GroupSummary{Count: len(data)}
	if len(data) < 2 {
		summary.Mean = data[0]
	} else {
		summary.Mean, summary.StdDev = stat.MeanStdDev(data, nil)
	}

	min, err := stats.Min(data)
	if err != nil {
		return GroupSummary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return GroupSummary{}, err
	}
	summary.Min, summary.Max = min, max

	if !isFinite(summary.Mean) || !isFinite(summary.StdDev) {
		return GroupSummary{}, fmt.Errorf("summary of %d values overflowed: mean=%v std=%v", len(data), summary.Mean, summary.StdDev)
	}

	return summary, nil
}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	rounded, err := stats.Round(x, 2)
	if err != nil {
		return x
	}
	return rounded
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
