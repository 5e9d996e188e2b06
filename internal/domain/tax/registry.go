package tax

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds the federal table and the per-state tables. It is built
// once and never mutated, so it can be shared freely.
type Registry struct {
	federal Jurisdiction
	states  map[string]Jurisdiction
	byName  map[string]string
	codes   []string
}

func NewRegistry(federal Jurisdiction, states []Jurisdiction) (*Registry, error) {
	if federal.kind != KindTaxed {
		return nil, fmt.Errorf("federal: %w", ErrEmptyTable)
	}
	if err := Validate(federal.brackets); err != nil {
		return nil, fmt.Errorf("federal: %w", err)
	}

	reg := &Registry{
		federal: federal,
		states:  make(map[string]Jurisdiction, len(states)),
		byName:  make(map[string]string, len(states)),
	}
	for _, j := range states {
		code := NormalizeCode(j.Code)
		if !validCode(code) {
			return nil, fmt.Errorf("%q: %w", j.Code, ErrJurisdictionCode)
		}
		if _, exists := reg.states[code]; exists {
			return nil, fmt.Errorf("%s: %w", code, ErrJurisdictionExists)
		}
		// A taxed jurisdiction without brackets is a broken table, not an
		// exempt state.
		if j.kind == KindTaxed {
			if err := Validate(j.brackets); err != nil {
				return nil, fmt.Errorf("%s: %w", code, err)
			}
		}
		j.Code = code
		reg.states[code] = j
		if j.Name != "" {
			reg.byName[strings.ToLower(j.Name)] = code
		}
		reg.codes = append(reg.codes, code)
	}
	sort.Strings(reg.codes)
	return reg, nil
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the registry of compiled-in 2025 tables.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		reg, err := NewRegistry(builtinFederal(), builtinStates())
		if err != nil {
			panic(fmt.Sprintf("builtin tax tables: %v", err))
		}
		builtin = reg
	})
	return builtin
}

func (r *Registry) Federal() Jurisdiction {
	return r.federal
}

func (r *Registry) State(code string) (Jurisdiction, bool) {
	j, ok := r.states[NormalizeCode(code)]
	return j, ok
}

// StateTax is the annual state tax for code; unknown codes owe nothing.
func (r *Registry) StateTax(code string, annualIncome float64) float64 {
	j, ok := r.State(code)
	if !ok {
		return 0
	}
	return j.AnnualTax(annualIncome)
}

// Lookup finds a jurisdiction by state code, or the federal table by
// "US" or "federal".
func (r *Registry) Lookup(code string) (Jurisdiction, error) {
	normalized := NormalizeCode(code)
	if normalized == FederalCode || normalized == "FEDERAL" {
		return r.federal, nil
	}
	if j, ok := r.states[normalized]; ok {
		return j, nil
	}
	return Jurisdiction{}, fmt.Errorf("%s: %w", code, ErrJurisdictionNotFound)
}

// ResolveState maps a state code or full state name to its code. Values
// that match neither are returned normalized with ok=false.
func (r *Registry) ResolveState(value string) (string, bool) {
	normalized := NormalizeCode(value)
	if _, ok := r.states[normalized]; ok {
		return normalized, true
	}
	if code, ok := r.byName[strings.ToLower(strings.Join(strings.Fields(value), " "))]; ok {
		return code, true
	}
	return normalized, false
}

// States lists state jurisdictions ordered by code.
func (r *Registry) States() []Jurisdiction {
	out := make([]Jurisdiction, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, r.states[code])
	}
	return out
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
