package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/golive/internal/domain"
)

// nullableFloatToValue converts a *float64 to a value suitable for SQLite storage.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func parseNullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// delaysToValue stores a delay vector as a JSON object keyed by phase name,
// or NULL when absent.
func delaysToValue(d *domain.DelayVector) (interface{}, error) {
	if d == nil {
		return nil, nil
	}
	m := make(map[string]int, domain.PhaseCount)
	for _, p := range domain.Phases {
		m[p.String()] = d[p]
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding delays: %w", err)
	}
	return string(b), nil
}

func parseDelays(s sql.NullString) (*domain.DelayVector, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var m map[string]int
	if err := json.Unmarshal([]byte(s.String), &m); err != nil {
		return nil, fmt.Errorf("decoding delays: %w", err)
	}
	d, err := domain.DelayVectorFromMap(m)
	if err != nil {
		return nil, fmt.Errorf("decoding delays: %w", err)
	}
	return &d, nil
}
