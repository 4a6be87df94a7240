// Package analysis compares the monitored PCOS features between the positive
// and negative diagnostic class and measures missingness per column.
package analysis

import (
	"fmt"
	"sort"

	"pcoslens/domain/core"
	"pcoslens/domain/dataset"
	"pcoslens/internal"
	"pcoslens/internal/errors"
	"pcoslens/internal/profiling"
)

// Analyzer computes an AnalysisResult from a loaded dataset. It has no side
// effects besides diagnostics.
type Analyzer struct {
	distributions *profiling.DistributionAnalyzer
	logger        *internal.Logger
}

// NewAnalyzer creates an analyzer logging to logger (DefaultLogger when nil)
func NewAnalyzer(logger *internal.Logger) *Analyzer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Analyzer{
		distributions: profiling.NewDistributionAnalyzer(),
		logger:        logger,
	}
}

// Analyze labels every record, compares each monitored feature found in the
// schema of the first record, ranks the features and counts missing values.
func (a *Analyzer) Analyze(ds *dataset.Dataset) (*dataset.AnalysisResult, error) {
	if ds.Len() == 0 {
		return nil, errors.DataLoad("cannot analyze dataset", core.ErrEmptyDataset)
	}

	partitioner := NewClassPartitioner(ds)
	result := &dataset.AnalysisResult{
		TotalRecords:      ds.Len(),
		PCOSDistribution:  partitioner.Distribution(),
		FeatureStatistics: make(map[string]dataset.FeatureStat),
		TopDiscriminative: []string{},
	}
	if !ds.HasColumn(dataset.DiagnosisColumn) {
		a.logger.Warn("%v; every record is labeled negative", core.NewColumnAbsentError(dataset.DiagnosisColumn))
	}

	for _, feature := range monitoredFeatures {
		if !ds.HasColumn(feature) {
			a.logger.Debug("skipping %q: not in the schema of the first record", feature)
			continue
		}

		part := partitioner.Partition(ds, feature)
		if part.Excluded() > 0 {
			a.logger.Debug("%q: excluded %d absent, %d unparseable, %d non-finite values",
				feature, part.Absent, part.Unparseable, part.NonFinite)
		}

		stat, err := a.compare(part)
		if err != nil {
			a.logger.Debug("omitting %q: %v", feature, err)
			continue
		}
		result.FeatureStatistics[feature] = stat
		result.FeatureOrder = append(result.FeatureOrder, feature)
	}

	result.TopDiscriminative = rankFeatures(result.FeatureStatistics, result.FeatureOrder, TopFeatureLimit)
	result.MissingValues, result.Columns = CountMissing(ds)

	a.logger.Info("analyzed %d records: %d features compared, %d columns scanned",
		result.TotalRecords, len(result.FeatureOrder), len(result.Columns))

	return result, nil
}

// compare summarizes both classes of one feature. Either class being empty
// means the feature is not comparable.
func (a *Analyzer) compare(part FeaturePartition) (dataset.FeatureStat, error) {
	pos, err := a.distributions.Summarize(part.Positive)
	if err != nil {
		return dataset.FeatureStat{}, fmt.Errorf("positive class: %w", err)
	}
	neg, err := a.distributions.Summarize(part.Negative)
	if err != nil {
		return dataset.FeatureStat{}, fmt.Errorf("negative class: %w", err)
	}

	a.logger.Debug("%q: positive n=%d range [%g, %g], negative n=%d range [%g, %g]",
		part.Feature, pos.Count, pos.Min, pos.Max, neg.Count, neg.Min, neg.Max)

	diff := pos.Mean - neg.Mean
	if diff < 0 {
		diff = -diff
	}

	return dataset.FeatureStat{
		PositiveMean: profiling.Round2(pos.Mean),
		PositiveStd:  profiling.Round2(pos.StdDev),
		NegativeMean: profiling.Round2(neg.Mean),
		NegativeStd:  profiling.Round2(neg.StdDev),
		Difference:   profiling.Round2(diff),
	}, nil
}

// rankFeatures orders features by rounded difference, largest first, keeping
// the given order on ties, and returns at most limit names.
func rankFeatures(stats map[string]dataset.FeatureStat, order []string, limit int) []string {
	ranked := append([]string{}, order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats[ranked[i]].Difference > stats[ranked[j]].Difference
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
