package domain

import (
	"fmt"
	"strings"
)

// Phase identifies one of the fixed project phases evaluated at Go-Live.
type Phase int

const (
	PhaseUAT Phase = iota
	PhaseMigration
	PhaseE2E
	PhaseTraining
	PhaseResources
	PhaseHypercare
)

// PhaseCount is the size of the fixed phase set.
const PhaseCount = int(PhaseHypercare) + 1

// Phases lists every phase in model order.
var Phases = [PhaseCount]Phase{
	PhaseUAT,
	PhaseMigration,
	PhaseE2E,
	PhaseTraining,
	PhaseResources,
	PhaseHypercare,
}

// DelayablePhases are the phases whose schedule the optimizer may extend.
// Resources follows team size and Hypercare starts after Go-Live.
var DelayablePhases = []Phase{PhaseUAT, PhaseMigration, PhaseE2E, PhaseTraining}

var phaseNames = [PhaseCount]string{"UAT", "Migration", "E2E", "Training", "Resources", "Hypercare"}

func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) Valid() bool {
	return p >= PhaseUAT && p <= PhaseHypercare
}

// ParsePhase resolves a phase name case-insensitively. "PRO" is accepted as
// an alias for Resources, the production-readiness phase.
func ParsePhase(s string) (Phase, error) {
	name := strings.TrimSpace(s)
	if strings.EqualFold(name, "PRO") {
		return PhaseResources, nil
	}
	for i, n := range phaseNames {
		if strings.EqualFold(n, name) {
			return Phase(i), nil
		}
	}
	return 0, InvalidInputf("unknown phase %q", s)
}

func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, InvalidInputf("unknown phase %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// dependencies maps each phase to the phases that must finish before it starts.
var dependencies = map[Phase][]Phase{
	PhaseMigration: {PhaseUAT},
	PhaseE2E:       {PhaseMigration},
	PhaseTraining:  {PhaseE2E},
	PhaseResources: {PhaseE2E},
	PhaseHypercare: {PhaseTraining, PhaseResources},
}

// Predecessors returns the direct predecessors of p.
func Predecessors(p Phase) []Phase {
	return append([]Phase(nil), dependencies[p]...)
}

// Downstream returns every phase transitively depending on p, in model order.
func Downstream(p Phase) []Phase {
	affected := make(map[Phase]bool)
	var visit func(Phase)
	visit = func(cur Phase) {
		for succ, preds := range dependencies {
			for _, pred := range preds {
				if pred == cur && !affected[succ] {
					affected[succ] = true
					visit(succ)
				}
			}
		}
	}
	visit(p)

	var out []Phase
	for _, ph := range Phases {
		if affected[ph] {
			out = append(out, ph)
		}
	}
	return out
}
