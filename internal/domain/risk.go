package domain

import "math"

// MaxSumRisks is the upper end of aggregate risk (three sliders at 100).
const MaxSumRisks = 300.0

// RiskProfile holds the three external risk sliders, each in [0,100].
type RiskProfile struct {
	Technical float64
	Business  float64
	Scope     float64
}

// Sum is the aggregate risk in [0,300]. Zero switches the simulator to
// deterministic mode.
func (r RiskProfile) Sum() float64 {
	return r.Technical + r.Business + r.Scope
}

func (r RiskProfile) Validate() error {
	for _, s := range []struct {
		name string
		v    float64
	}{
		{"technical", r.Technical},
		{"business", r.Business},
		{"scope", r.Scope},
	} {
		if math.IsNaN(s.v) || s.v < 0 || s.v > 100 {
			return InvalidInputf("%s risk %.1f outside [0,100]", s.name, s.v)
		}
	}
	return nil
}

// ValidateSumRisks checks an aggregate risk value supplied directly.
func ValidateSumRisks(sum float64) error {
	if math.IsNaN(sum) || sum < 0 || sum > MaxSumRisks {
		return InvalidInputf("aggregate risk %.1f outside [0,%.0f]", sum, MaxSumRisks)
	}
	return nil
}
