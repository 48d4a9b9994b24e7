package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	golive "github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// scenarioFlags are shared by the commands that evaluate a schedule.
type scenarioFlags struct {
	completion map[string]string
	delays     map[string]int
	risk       map[string]string
}

func (f *scenarioFlags) register(fs *pflag.FlagSet, withCompletion, withRisk bool) {
	if withCompletion {
		fs.StringToStringVar(&f.completion, "completion", nil,
			"Phase completion at Go-Live, e.g. UAT=0.9,Migration=95% (unlisted phases are complete, Hypercare 0)")
	}
	fs.StringToIntVar(&f.delays, "delays", nil, "Delay-days per phase, e.g. Migration=5,E2E=3")
	if withRisk {
		fs.StringToStringVar(&f.risk, "risk", nil, "Risk sliders 0-100, e.g. technical=40,business=20,scope=10")
	}
}

func (f *scenarioFlags) baseline() (domain.Completion, error) {
	return parseCompletion(f.completion, domain.FullCompletion())
}

func (f *scenarioFlags) delayVector() (domain.DelayVector, error) {
	return domain.DelayVectorFromMap(f.delays)
}

func (f *scenarioFlags) riskProfile() (domain.RiskProfile, error) {
	return parseRisk(f.risk)
}

// parseCompletion overlays name=value pairs on base. Values are fractions
// or, with a % suffix, percentages.
func parseCompletion(m map[string]string, base domain.Completion) (domain.Completion, error) {
	c := base
	for _, name := range sortedKeys(m) {
		p, err := domain.ParsePhase(name)
		if err != nil {
			return domain.Completion{}, err
		}
		v, err := parseFraction(m[name])
		if err != nil {
			return domain.Completion{}, domain.InvalidInputf("%s completion: %v", p, err)
		}
		c[p] = v
	}
	return c, c.Validate()
}

func parseFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSuffix(s, "%")
		scale = 100
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v / scale, nil
}

func parseRisk(m map[string]string) (domain.RiskProfile, error) {
	var r domain.RiskProfile
	for _, key := range sortedKeys(m) {
		v, err := strconv.ParseFloat(strings.TrimSpace(m[key]), 64)
		if err != nil {
			return r, domain.InvalidInputf("risk %s: invalid number %q", key, m[key])
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "technical", "tech":
			r.Technical = v
		case "business":
			r.Business = v
		case "scope":
			r.Scope = v
		default:
			return r, domain.InvalidInputf("unknown risk %q (want technical, business or scope)", key)
		}
	}
	return r, r.Validate()
}

// parsePhaseValues reads name=value pairs in [0,100] into a per-phase table.
func parsePhaseValues(m map[string]string) (domain.PhaseValues, error) {
	var out domain.PhaseValues
	for _, name := range sortedKeys(m) {
		p, err := domain.ParsePhase(name)
		if err != nil {
			return out, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(m[name]), 64)
		if err != nil {
			return out, domain.InvalidInputf("%s: invalid number %q", p, m[name])
		}
		out[p] = v
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// engineErr classifies use-case errors for the caller.
func engineErr(err error) error {
	if err == nil {
		return nil
	}
	return golive.AsEngineError(err)
}

func requireUseCase(cmd *cobra.Command, ok bool) error {
	if !ok {
		return fmt.Errorf("%s is not available in this build", cmd.Name())
	}
	return nil
}
