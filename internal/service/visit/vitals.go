package visit

import (
	"fmt"
	"strings"
)

// Plausible ranges for recorded vital signs. Values outside these bounds
// are rejected as data entry errors.
const (
	MinSystolic    = 50
	MaxSystolic    = 300
	MinDiastolic   = 30
	MaxDiastolic   = 200
	MinHeartRate   = 30
	MaxHeartRate   = 200
	MinRespiratory = 5
	MaxRespiratory = 60
	MinTemperature = 30.0
	MaxTemperature = 45.0
	MinOxygenSat   = 50
	MaxOxygenSat   = 100
	MinWeightKg    = 0.5
	MaxWeightKg    = 500.0
	MinHeightCm    = 20.0
	MaxHeightCm    = 280.0
	MinPainScale   = 0
	MaxPainScale   = 10
)

// Vitals carries the measurements taken during a visit. All fields are
// optional; only present values are validated and stored.
type Vitals struct {
	BPSystolic       *int
	BPDiastolic      *int
	HeartRate        *int
	RespiratoryRate  *int
	Temperature      *float64
	OxygenSaturation *int
	WeightKg         *float64
	HeightCm         *float64
	PainScale        *int
}

// Validate checks every present measurement against its plausible range
// and names the offending fields in the returned error. Each field is
// checked on its own; readings are stored as entered, so there is no
// cross-field consistency rule.
func (v Vitals) Validate() error {
	var bad []string

	checkInt := func(name string, val *int, min, max int) {
		if val != nil && (*val < min || *val > max) {
			bad = append(bad, name)
		}
	}
	checkFloat := func(name string, val *float64, min, max float64) {
		if val != nil && (*val < min || *val > max) {
			bad = append(bad, name)
		}
	}

	checkInt("bp_systolic", v.BPSystolic, MinSystolic, MaxSystolic)
	checkInt("bp_diastolic", v.BPDiastolic, MinDiastolic, MaxDiastolic)
	checkInt("heart_rate", v.HeartRate, MinHeartRate, MaxHeartRate)
	checkInt("respiratory_rate", v.RespiratoryRate, MinRespiratory, MaxRespiratory)
	checkFloat("temperature", v.Temperature, MinTemperature, MaxTemperature)
	checkInt("oxygen_saturation", v.OxygenSaturation, MinOxygenSat, MaxOxygenSat)
	checkFloat("weight", v.WeightKg, MinWeightKg, MaxWeightKg)
	checkFloat("height", v.HeightCm, MinHeightCm, MaxHeightCm)
	checkInt("pain_scale", v.PainScale, MinPainScale, MaxPainScale)

	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrVitalsOutOfRange, strings.Join(bad, ", "))
	}
	return nil
}
