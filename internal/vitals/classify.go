// Package vitals classifies blood-pressure readings and holds a session's readings.
package vitals

// Band is the severity band a reading falls into.
type Band string

const (
	BandNormal   Band = "Normal"
	BandElevated Band = "Elevated/Caution"
	BandHigh     Band = "High"
)

// Severity is the display tag paired with a band.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Classification struct {
	Band     Band     `json:"band"`
	Severity Severity `json:"severity"`
}

// Classify maps a systolic/diastolic pair to its band. Bounds are exclusive:
// 120/80 is not Normal and 140/90 is High.
func Classify(systolic, diastolic int) Classification {
	switch {
	case systolic < 120 && diastolic < 80:
		return Classification{Band: BandNormal, Severity: SeveritySuccess}
	case systolic < 140 && diastolic < 90:
		return Classification{Band: BandElevated, Severity: SeverityWarning}
	default:
		return Classification{Band: BandHigh, Severity: SeverityError}
	}
}
