package dataset

// FeatureStat compares one feature between the positive and negative class.
// All values are rounded to two decimal places.
type FeatureStat struct {
	PositiveMean float64 `json:"pcos_positive_mean"`
	PositiveStd  float64 `json:"pcos_positive_std"`
	NegativeMean float64 `json:"pcos_negative_mean"`
	NegativeStd  float64 `json:"pcos_negative_std"`
	Difference   float64 `json:"difference"`
}

// Distribution counts records per diagnostic class
type Distribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// AnalysisResult is the outcome of one analysis run and the content of the results document.
type AnalysisResult struct {
	TotalRecords      int                    `json:"total_records"`
	PCOSDistribution  Distribution           `json:"pcos_distribution"`
	FeatureStatistics map[string]FeatureStat `json:"feature_statistics"`
	TopDiscriminative []string               `json:"top_discriminative_features"`
	MissingValues     map[string]int         `json:"missing_values"`

	// FeatureOrder lists the keys of FeatureStatistics in monitored-list order.
	FeatureOrder []string `json:"-"`
	// Columns lists the keys of MissingValues in schema order.
	Columns []string `json:"-"`
}

// Percent returns n as a percentage of TotalRecords.
func (r *AnalysisResult) Percent(n int) float64 {
	if r.TotalRecords == 0 {
		return 0
	}
	return float64(n) / float64(r.TotalRecords) * 100
}
