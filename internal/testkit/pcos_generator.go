package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
)

// PCOSGeneratorConfig configures the synthetic PCOS dataset generator
type PCOSGeneratorConfig struct {
	PatientCount int     `json:"patient_count"`
	PositiveRate float64 `json:"positive_rate"`
	MissingRate  float64 `json:"missing_rate"`
	Seed         int64   `json:"seed"`
}

// DefaultPCOSConfig mirrors the shape of the public Kaggle dataset
func DefaultPCOSConfig() PCOSGeneratorConfig {
	return PCOSGeneratorConfig{
		PatientCount: 541,
		PositiveRate: 0.33,
		MissingRate:  0.01,
		Seed:         42,
	}
}

// featureShape describes how a clinical measurement is drawn: normal with the
// given mean and spread for negative patients, mean moved by shift for positive ones.
type featureShape struct {
	name     string
	mean     float64
	stdDev   float64
	shift    float64
	decimals int
}

var pcosFeatures = []featureShape{
	{"Age (yrs)", 31.4, 5.4, -1.5, 0},
	{"Weight (Kg)", 58.6, 11.0, 4.0, 1},
	{"Height(Cm)", 156.5, 6.0, 0.3, 1},
	{"BMI", 24.1, 4.0, 1.5, 2},
	{"Pulse rate(bpm)", 73.2, 4.3, 0.4, 0},
	{"RR (breaths/min)", 19.2, 1.7, 0.2, 0},
	{"Hb(g/dl)", 11.2, 0.9, 0.1, 1},
	{"Cycle(R/I)", 2.2, 0.5, 0.9, 0},
	{"Cycle length(days)", 5.0, 1.5, -0.5, 0},
	{"FSH(mIU/mL)", 6.9, 3.0, -0.6, 2},
	{"LH(mIU/mL)", 2.5, 1.4, 0.7, 2},
	{"FSH/LH", 3.0, 1.5, -0.5, 2},
	{"Hip(inch)", 37.6, 4.0, 1.2, 0},
	{"Waist(inch)", 33.5, 3.6, 1.3, 0},
	{"Waist:Hip Ratio", 0.89, 0.05, 0.0, 2},
	{"TSH (mIU/L)", 2.9, 1.5, 0.1, 2},
	{"AMH(ng/mL)", 4.4, 3.0, 2.5, 2},
	{"PRL(ng/mL)", 24.3, 14.0, -0.6, 2},
	{"Vit D3 (ng/mL)", 49.9, 20.0, 0.5, 1},
	{"PRG(ng/mL)", 0.61, 0.3, 0.0, 2},
	{"RBS(mg/dl)", 99.8, 18.0, 1.5, 0},
	{"BP _Systolic (mmHg)", 114.7, 7.4, 0.3, 0},
	{"BP _Diastolic (mmHg)", 76.9, 5.5, 0.2, 0},
	{"Follicle No. (L)", 4.4, 3.0, 4.6, 0},
	{"Follicle No. (R)", 5.1, 3.1, 5.2, 0},
	{"Avg. F size (L) (mm)", 14.5, 3.7, 1.0, 1},
	{"Avg. F size (R) (mm)", 15.0, 3.5, 0.6, 1},
	{"Endometrium (mm)", 8.3, 2.1, 0.4, 1},
}

// missingMarkers are the spellings of a missing cell found in exported spreadsheets
var missingMarkers = []string{"", "NA", " ", "N/A"}

// PCOSDataGenerator generates synthetic patient records
type PCOSDataGenerator struct {
	config PCOSGeneratorConfig
	rng    *rand.Rand
}

// NewPCOSDataGenerator creates a new generator; equal seeds give equal rows
func NewPCOSDataGenerator(config PCOSGeneratorConfig) *PCOSDataGenerator {
	return &PCOSDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Header returns the column names of the generated table
func (g *PCOSDataGenerator) Header() []string {
	header := []string{"Sl. No", "Patient File No.", "PCOS (Y/N)"}
	for _, f := range pcosFeatures {
		header = append(header, f.name)
	}
	return header
}

// GenerateRows returns the header followed by one row per patient
func (g *PCOSDataGenerator) GenerateRows() [][]string {
	rows := make([][]string, 0, g.config.PatientCount+1)
	rows = append(rows, g.Header())

	for i := 0; i < g.config.PatientCount; i++ {
		positive := g.rng.Float64() < g.config.PositiveRate
		label := "0"
		if positive {
			label = "1"
		}

		row := []string{strconv.Itoa(i + 1), strconv.Itoa(10000 + i*3), label}
		for _, f := range pcosFeatures {
			row = append(row, g.cell(f, positive))
		}
		rows = append(rows, row)
	}

	return rows
}

func (g *PCOSDataGenerator) cell(f featureShape, positive bool) string {
	if g.rng.Float64() < g.config.MissingRate {
		return missingMarkers[g.rng.Intn(len(missingMarkers))]
	}

	mean := f.mean
	if positive {
		mean += f.shift
	}
	v := math.Max(0, mean+g.rng.NormFloat64()*f.stdDev)
	return strconv.FormatFloat(v, 'f', f.decimals, 64)
}

// WriteCSV writes the generated table to path
func (g *PCOSDataGenerator) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(g.GenerateRows()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
