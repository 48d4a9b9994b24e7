package domain

// DelayVector holds whole delay-days per phase.
type DelayVector [PhaseCount]int

func (d DelayVector) Validate() error {
	for _, p := range Phases {
		if d[p] < 0 {
			return InvalidInputf("%s delay %d days is negative", p, d[p])
		}
	}
	return nil
}

// Total sums delay-days over the pre-Go-Live phases. Hypercare runs after
// launch and is excluded.
func (d DelayVector) Total() int {
	total := 0
	for _, p := range Phases {
		if p == PhaseHypercare {
			continue
		}
		total += d[p]
	}
	return total
}

func (d DelayVector) IsZero() bool {
	return d == DelayVector{}
}

// DelayVectorFromMap builds a DelayVector from phase-name keys.
func DelayVectorFromMap(m map[string]int) (DelayVector, error) {
	var d DelayVector
	for name, days := range m {
		p, err := ParsePhase(name)
		if err != nil {
			return DelayVector{}, err
		}
		d[p] = days
	}
	return d, d.Validate()
}
