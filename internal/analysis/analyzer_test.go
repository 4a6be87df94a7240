package analysis

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"testing"

	"pcoslens/domain/core"
	"pcoslens/domain/dataset"
	"pcoslens/internal"
	"pcoslens/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *internal.Logger {
	return internal.NewLoggerTo(io.Discard, internal.LogLevelError)
}

// table builds a dataset where every row carries every header
func table(headers []string, rows ...[]string) *dataset.Dataset {
	ds := &dataset.Dataset{Source: "test.csv", Headers: headers}
	for _, row := range rows {
		rec := make(dataset.Record, len(headers))
		for i, cell := range row {
			rec[headers[i]] = cell
		}
		ds.Rows = append(ds.Rows, rec)
	}
	return ds
}

func TestAnalyzeThreeRowScenario(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "BMI"},
		[]string{"Y", "30.0"},
		[]string{"N", "22.0"},
		[]string{"1", "28.0"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, dataset.Distribution{Positive: 2, Negative: 1}, result.PCOSDistribution)

	require.Contains(t, result.FeatureStatistics, "BMI")
	bmi := result.FeatureStatistics["BMI"]
	assert.Equal(t, 29.0, bmi.PositiveMean)
	assert.Equal(t, 1.41, bmi.PositiveStd)
	assert.Equal(t, 22.0, bmi.NegativeMean)
	assert.Equal(t, 0.0, bmi.NegativeStd)
	assert.Equal(t, 7.0, bmi.Difference)

	assert.Equal(t, []string{"BMI"}, result.FeatureOrder)
	assert.Equal(t, []string{"BMI"}, result.TopDiscriminative)
	assert.Equal(t, map[string]int{"PCOS (Y/N)": 0, "BMI": 0}, result.MissingValues)
}

func TestAnalyzeEmptyFieldIsExcludedAndMissing(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "BMI"},
		[]string{"Y", "30.0"},
		[]string{"Y", ""},
		[]string{"N", "22.0"},
		[]string{"N", "24.0"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	bmi := result.FeatureStatistics["BMI"]
	assert.Equal(t, 30.0, bmi.PositiveMean, "blank cell must not count as zero")
	assert.Equal(t, 0.0, bmi.PositiveStd)
	assert.Equal(t, 23.0, bmi.NegativeMean)
	assert.Equal(t, 1, result.MissingValues["BMI"])
}

func TestAnalyzeLabels(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "BMI"},
		[]string{"Y", "1"},
		[]string{"1", "1"},
		[]string{"y", "1"},
		[]string{" Y", "1"},
		[]string{"1.0", "1"},
		[]string{"yes", "1"},
		[]string{"", "1"},
		[]string{"0", "1"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	assert.Equal(t, 2, result.PCOSDistribution.Positive)
	assert.Equal(t, 6, result.PCOSDistribution.Negative)
}

func TestAnalyzeWithoutDiagnosisColumn(t *testing.T) {
	ds := table([]string{"BMI", "Age (yrs)"},
		[]string{"30", "25"},
		[]string{"22", "31"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	assert.Equal(t, dataset.Distribution{Positive: 0, Negative: 2}, result.PCOSDistribution)
	assert.Empty(t, result.FeatureStatistics, "no positive values means no comparison")
	assert.Empty(t, result.TopDiscriminative)
	assert.NotNil(t, result.TopDiscriminative)
}

func TestAnalyzeSkipsUnparseableAndNonFiniteValues(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "AMH(ng/mL)"},
		[]string{"Y", "5.5"},
		[]string{"Y", "a"},
		[]string{"Y", "NaN"},
		[]string{"Y", "+Inf"},
		[]string{"Y", " 7.5 "},
		[]string{"N", "NA"},
		[]string{"N", "2.0"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	amh := result.FeatureStatistics["AMH(ng/mL)"]
	assert.Equal(t, 6.5, amh.PositiveMean)
	assert.Equal(t, 1.41, amh.PositiveStd)
	assert.Equal(t, 2.0, amh.NegativeMean)
	assert.Equal(t, 4.5, amh.Difference)
	// only the NA token counts as missing; text and NaN are present but unusable
	assert.Equal(t, 1, result.MissingValues["AMH(ng/mL)"])
}

func TestAnalyzeOmitsFeatureWithEmptyClass(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "BMI", "Hb(g/dl)"},
		[]string{"Y", "30", "11"},
		[]string{"N", "22", "NA"},
		[]string{"N", "21", ""},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	assert.Contains(t, result.FeatureStatistics, "BMI")
	assert.NotContains(t, result.FeatureStatistics, "Hb(g/dl)")
	assert.Equal(t, []string{"BMI"}, result.FeatureOrder)
	assert.Equal(t, 2, result.MissingValues["Hb(g/dl)"])
}

func TestAnalyzeProbesSchemaOfFirstRowOnly(t *testing.T) {
	headers := []string{"PCOS (Y/N)", "BMI", "Waist(inch)"}
	ds := table(headers,
		[]string{"Y", "30"},
		[]string{"N", "22", "30"},
		[]string{"Y", "28", "36"},
	)
	require.False(t, ds.Rows[0].Has("Waist(inch)"))

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	assert.NotContains(t, result.FeatureStatistics, "Waist(inch)")
	assert.NotContains(t, result.MissingValues, "Waist(inch)")
	assert.Equal(t, []string{"PCOS (Y/N)", "BMI"}, result.Columns)
}

func TestAnalyzeCountsAbsentCellsAsMissing(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "BMI", "Waist(inch)"},
		[]string{"Y", "30", "34"},
		[]string{"N", "22"},
		[]string{"N", "24", " N/A "},
		[]string{"Y", "31", "n/a"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	// "n/a" is not a blank token: matching is case-sensitive
	assert.Equal(t, 2, result.MissingValues["Waist(inch)"])
	assert.Equal(t, 0, result.MissingValues["BMI"])
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	_, err := NewAnalyzer(quietLogger()).Analyze(&dataset.Dataset{Headers: []string{"PCOS (Y/N)"}})
	require.Error(t, err)
	assert.True(t, errors.IsDataLoad(err))
	assert.True(t, core.IsEmptyDataset(err))
}

// wideDataset gives feature i a positive mean of 10+i and a negative mean of 10,
// so differences grow with list position.
func wideDataset(features []string, rows int) *dataset.Dataset {
	headers := append([]string{"PCOS (Y/N)"}, features...)
	var data [][]string
	for r := 0; r < rows; r++ {
		label := "N"
		if r%3 == 0 {
			label = "Y"
		}
		row := []string{label}
		for i := range features {
			v := 10.0 + float64(r%4)
			if label == "Y" {
				v += float64(i)
			}
			row = append(row, fmt.Sprintf("%g", v))
		}
		data = append(data, row)
	}
	return table(headers, data...)
}

func TestAnalyzeRanksTopTen(t *testing.T) {
	features := MonitoredFeatures()[:14]
	result, err := NewAnalyzer(quietLogger()).Analyze(wideDataset(features, 30))
	require.NoError(t, err)

	require.Len(t, result.FeatureStatistics, 14)
	require.Len(t, result.TopDiscriminative, TopFeatureLimit)
	assert.Equal(t, features[13], result.TopDiscriminative[0])
	assert.Equal(t, features[4], result.TopDiscriminative[9])

	for i := 1; i < len(result.TopDiscriminative); i++ {
		prev := result.FeatureStatistics[result.TopDiscriminative[i-1]].Difference
		cur := result.FeatureStatistics[result.TopDiscriminative[i]].Difference
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestAnalyzeRankingKeepsListOrderOnTies(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "BMI", "Age (yrs)", "Hip(inch)"},
		[]string{"Y", "2", "2", "9"},
		[]string{"N", "1", "1", "1"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	// Age precedes BMI in the monitored list
	assert.Equal(t, []string{"Hip(inch)", "Age (yrs)", "BMI"}, result.TopDiscriminative)
	assert.Equal(t, []string{"Age (yrs)", "BMI", "Hip(inch)"}, result.FeatureOrder)
}

func TestAnalyzeInvariants(t *testing.T) {
	result, err := NewAnalyzer(quietLogger()).Analyze(wideDataset(MonitoredFeatures(), 41))
	require.NoError(t, err)

	d := result.PCOSDistribution
	assert.Equal(t, result.TotalRecords, d.Positive+d.Negative)

	for name, s := range result.FeatureStatistics {
		assert.InDelta(t, math.Abs(s.PositiveMean-s.NegativeMean), s.Difference, 0.01, name)
		assert.False(t, math.IsNaN(s.PositiveStd) || math.IsNaN(s.NegativeStd), name)
	}
	assert.LessOrEqual(t, len(result.TopDiscriminative), TopFeatureLimit)
	assert.LessOrEqual(t, len(result.TopDiscriminative), len(result.FeatureStatistics))
	for col, n := range result.MissingValues {
		assert.LessOrEqual(t, n, result.TotalRecords, col)
	}
}

func TestAnalyzeIgnoresUnmonitoredColumns(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "Sl. No", " Age (yrs)"},
		[]string{"Y", "1", "30"},
		[]string{"N", "2", "25"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	assert.Empty(t, result.FeatureStatistics, "header names must match exactly")
	assert.Len(t, result.MissingValues, 3)
}

func TestMonitoredFeaturesIsACopy(t *testing.T) {
	list := MonitoredFeatures()
	require.Len(t, list, 28)
	assert.Equal(t, "Age (yrs)", list[0])
	assert.Equal(t, "Endometrium (mm)", list[27])

	list[0] = "changed"
	assert.Equal(t, "Age (yrs)", MonitoredFeatures()[0])
}

func TestAnalyzeLogsClassRanges(t *testing.T) {
	var logs bytes.Buffer
	ds := table([]string{"PCOS (Y/N)", "BMI"},
		[]string{"Y", "30.0"},
		[]string{"N", "22.0"},
		[]string{"1", "28.0"},
	)

	_, err := NewAnalyzer(internal.NewLoggerTo(&logs, internal.LogLevelDebug)).Analyze(ds)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"BMI": positive n=2 range [28, 30], negative n=1 range [22, 22]`)
}

func TestAnalyzeRoundsHalvesAwayFromZero(t *testing.T) {
	ds := table([]string{"PCOS (Y/N)", "BMI"},
		[]string{"Y", "0.125"},
		[]string{"N", "0"},
	)

	result, err := NewAnalyzer(quietLogger()).Analyze(ds)
	require.NoError(t, err)

	bmi := result.FeatureStatistics["BMI"]
	assert.Equal(t, 0.13, bmi.PositiveMean)
	assert.Equal(t, 0.13, bmi.Difference)
}
