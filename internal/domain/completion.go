package domain

import "math"

// Completion holds one completion fraction in [0,1] per phase. Phases left at
// the zero value count as not started.
type Completion [PhaseCount]float64

// FullCompletion returns the Go-Live reference vector: every phase complete
// except Hypercare, which only begins after launch.
func FullCompletion() Completion {
	var c Completion
	for _, p := range Phases {
		c[p] = 1
	}
	c[PhaseHypercare] = 0
	return c
}

func (c Completion) Get(p Phase) float64 {
	if !p.Valid() {
		return 0
	}
	return c[p]
}

// With returns a copy of c with phase p set to v.
func (c Completion) With(p Phase, v float64) Completion {
	c[p] = v
	return c
}

func (c Completion) Validate() error {
	for _, p := range Phases {
		v := c[p]
		if math.IsNaN(v) || v < 0 || v > 1 {
			return InvalidInputf("%s completion %.4f outside [0,1]", p, v)
		}
	}
	return nil
}

// CompletionFromMap builds a Completion from phase-name keys. Missing phases
// stay at 0.
func CompletionFromMap(m map[string]float64) (Completion, error) {
	var c Completion
	for name, v := range m {
		p, err := ParsePhase(name)
		if err != nil {
			return Completion{}, err
		}
		c[p] = v
	}
	return c, c.Validate()
}

// ClampUnit bounds v to [0,1].
func ClampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
