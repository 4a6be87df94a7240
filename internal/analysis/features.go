package analysis

// TopFeatureLimit caps the ranked list of discriminative features.
const TopFeatureLimit = 10

// monitoredFeatures are the columns compared between classes, in report order.
// Names must match the header text exactly, units and spacing included.
var monitoredFeatures = [...]string{
	"Age (yrs)", "Weight (Kg)", "Height(Cm)", "BMI",
	"Pulse rate(bpm)", "RR (breaths/min)", "Hb(g/dl)",
	"Cycle(R/I)", "Cycle length(days)", "FSH(mIU/mL)",
	"LH(mIU/mL)", "FSH/LH", "Hip(inch)", "Waist(inch)",
	"Waist:Hip Ratio", "TSH (mIU/L)", "AMH(ng/mL)",
	"PRL(ng/mL)", "Vit D3 (ng/mL)", "PRG(ng/mL)",
	"RBS(mg/dl)", "BP _Systolic (mmHg)", "BP _Diastolic (mmHg)",
	"Follicle No. (L)", "Follicle No. (R)",
	"Avg. F size (L) (mm)", "Avg. F size (R) (mm)",
	"Endometrium (mm)",
}

// blankTokens mark a value as missing once surrounding whitespace is trimmed.
// Matching is case-sensitive.
var blankTokens = map[string]struct{}{"": {}, "NA": {}, "N/A": {}}

// MonitoredFeatures returns a copy of the monitored feature list.
func MonitoredFeatures() []string {
	out := make([]string, len(monitoredFeatures))
	copy(out, monitoredFeatures[:])
	return out
}

func isBlank(trimmed string) bool {
	_, ok := blankTokens[trimmed]
	return ok
}
