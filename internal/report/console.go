// Package report renders an AnalysisResult for people (console text) and for
// machines (the JSON results document).
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"pcoslens/domain/dataset"
)

var rule = strings.Repeat("-", 80)

// recommendations are printed after every successful run; they do not depend on the data.
var recommendations = []string{
	"Use top discriminative features for better accuracy",
	"Apply median imputation for missing values",
	"Consider feature scaling (standardization)",
	"Handle class imbalance if necessary",
}

// ConsoleRenderer writes the human-readable report
type ConsoleRenderer struct {
	out io.Writer
}

// NewConsoleRenderer creates a renderer writing to out
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

// RenderAnalysis writes totals, class distribution, per-feature comparison,
// the ranked features and the missing-value report.
func (c *ConsoleRenderer) RenderAnalysis(result *dataset.AnalysisResult) error {
	w := bufio.NewWriter(c.out)

	fmt.Fprintf(w, "Total records: %d\n", result.TotalRecords)

	dist := result.PCOSDistribution
	fmt.Fprintf(w, "\nPCOS Distribution:\n")
	fmt.Fprintf(w, "  Positive: %d (%.1f%%)\n", dist.Positive, result.Percent(dist.Positive))
	fmt.Fprintf(w, "  Negative: %d (%.1f%%)\n", dist.Negative, result.Percent(dist.Negative))

	fmt.Fprintf(w, "\nFeature Statistics (PCOS Positive vs Negative):\n%s\n", rule)
	for _, feature := range result.FeatureOrder {
		s := result.FeatureStatistics[feature]
		fmt.Fprintf(w, "%-30s | PCOS+: %.2f±%.2f | PCOS-: %.2f±%.2f | Diff: %.2f\n",
			feature, s.PositiveMean, s.PositiveStd, s.NegativeMean, s.NegativeStd, s.Difference)
	}

	fmt.Fprintf(w, "\nTop 10 Most Discriminative Features:\n%s\n", rule)
	for _, feature := range result.TopDiscriminative {
		fmt.Fprintf(w, "%-30s | Difference: %.2f\n", feature, result.FeatureStatistics[feature].Difference)
	}

	fmt.Fprintf(w, "\nMissing Values Analysis:\n%s\n", rule)
	for _, col := range missingByCount(result) {
		n := result.MissingValues[col]
		fmt.Fprintf(w, "%-30s | Missing: %d (%.1f%%)\n", col, n, result.Percent(n))
	}

	return w.Flush()
}

// RenderSaved confirms where the results document went and prints the recommendations.
func (c *ConsoleRenderer) RenderSaved(path string) error {
	w := bufio.NewWriter(c.out)

	fmt.Fprintf(w, "\nAnalysis results saved to '%s'\n", path)
	fmt.Fprintf(w, "\nRecommendations for ML Model:\n")
	for _, r := range recommendations {
		fmt.Fprintf(w, "- %s\n", r)
	}

	return w.Flush()
}

// missingByCount lists columns with at least one missing value, most missing
// first. Order among equal counts is not part of the report's contract.
func missingByCount(result *dataset.AnalysisResult) []string {
	cols := make([]string, 0, len(result.Columns))
	for _, col := range result.Columns {
		if result.MissingValues[col] > 0 {
			cols = append(cols, col)
		}
	}
	sort.SliceStable(cols, func(i, j int) bool {
		return result.MissingValues[cols[i]] > result.MissingValues[cols[j]]
	})
	return cols
}
