package analysis

import (
	"math"
	"strconv"
	"strings"

	"pcoslens/domain/dataset"
)

// exclusion says why a cell did not contribute to the statistics
type exclusion int

const (
	included exclusion = iota
	excludedAbsent
	excludedUnparseable
	excludedNonFinite
)

// FeaturePartition holds the numeric values of one feature split by class,
// in row order, plus counts of the cells that were left out.
type FeaturePartition struct {
	Feature     string
	Positive    []float64
	Negative    []float64
	Absent      int
	Unparseable int
	NonFinite   int
}

// Excluded is the number of rows that contributed no value
func (p FeaturePartition) Excluded() int {
	return p.Absent + p.Unparseable + p.NonFinite
}

// ClassPartitioner splits feature values by diagnostic class
type ClassPartitioner struct {
	labels []dataset.Label
}

// NewClassPartitioner labels every row of ds once
func NewClassPartitioner(ds *dataset.Dataset) *ClassPartitioner {
	labels := make([]dataset.Label, ds.Len())
	for i, row := range ds.Rows {
		labels[i] = dataset.LabelOf(row)
	}
	return &ClassPartitioner{labels: labels}
}

// Distribution counts rows per class
func (cp *ClassPartitioner) Distribution() dataset.Distribution {
	var d dataset.Distribution
	for _, l := range cp.labels {
		if l == dataset.Positive {
			d.Positive++
		} else {
			d.Negative++
		}
	}
	return d
}

// Partition extracts feature from every row and files it under the row's class
func (cp *ClassPartitioner) Partition(ds *dataset.Dataset, feature string) FeaturePartition {
	p := FeaturePartition{Feature: feature}
	for i, row := range ds.Rows {
		v, why := numericValue(row, feature)
		switch why {
		case excludedAbsent:
			p.Absent++
			continue
		case excludedUnparseable:
			p.Unparseable++
			continue
		case excludedNonFinite:
			p.NonFinite++
			continue
		}
		if cp.labels[i] == dataset.Positive {
			p.Positive = append(p.Positive, v)
		} else {
			p.Negative = append(p.Negative, v)
		}
	}
	return p
}

// numericValue parses the trimmed cell as a float. Absent and unparseable
// cells are both excluded but reported separately.
func numericValue(row dataset.Record, feature string) (float64, exclusion) {
	raw, ok := row.Lookup(feature)
	if !ok {
		return 0, excludedAbsent
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, excludedUnparseable
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, excludedNonFinite
	}
	return v, included
}
