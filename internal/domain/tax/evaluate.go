package tax

import (
	"fmt"
	"math"
)

// Evaluate returns the cumulative progressive tax owed on income. Each
// bracket taxes the slice of income between its bounds at its own rate.
func Evaluate(income float64, brackets []Bracket) float64 {
	if income <= 0 || math.IsNaN(income) {
		return 0
	}
	total := 0.0
	for _, b := range brackets {
		if income <= b.Lower {
			continue
		}
		top := income
		if b.Upper != nil && *b.Upper < top {
			top = *b.Upper
		}
		total += (top - b.Lower) * b.Rate
	}
	return total
}

// Validate checks the table invariants: starts at zero, ascending and
// contiguous, rates in [0,1], and only the last bracket unbounded.
func Validate(brackets []Bracket) error {
	if len(brackets) == 0 {
		return ErrEmptyTable
	}
	if brackets[0].Lower != 0 {
		return fmt.Errorf("%w: first bracket starts at %v", ErrBracketGap, brackets[0].Lower)
	}
	for i, b := range brackets {
		if b.Rate < 0 || b.Rate > 1 || math.IsNaN(b.Rate) {
			return fmt.Errorf("%w: bracket %d rate %v", ErrBracketRate, i, b.Rate)
		}
		last := i == len(brackets)-1
		if last {
			if b.Upper != nil {
				return fmt.Errorf("%w: final bracket has upper bound %v", ErrBracketUnbounded, *b.Upper)
			}
			continue
		}
		if b.Upper == nil {
			return fmt.Errorf("%w: bracket %d is unbounded but not last", ErrBracketUnbounded, i)
		}
		if *b.Upper <= b.Lower {
			return fmt.Errorf("%w: bracket %d upper %v <= lower %v", ErrBracketOrder, i, *b.Upper, b.Lower)
		}
		if next := brackets[i+1].Lower; next != *b.Upper {
			if next < *b.Upper {
				return fmt.Errorf("%w: bracket %d overlaps next at %v", ErrBracketOverlap, i, next)
			}
			return fmt.Errorf("%w: bracket %d ends at %v, next starts at %v", ErrBracketGap, i, *b.Upper, next)
		}
	}
	return nil
}

// Thresholds builds a contiguous table from ascending lower bounds and
// their rates; every bracket ends where the next begins.
func Thresholds(pairs ...[2]float64) []Bracket {
	out := make([]Bracket, len(pairs))
	for i, p := range pairs {
		out[i] = Bracket{Lower: p[0], Rate: p[1]}
		if i+1 < len(pairs) {
			upper := pairs[i+1][0]
			out[i].Upper = &upper
		}
	}
	return out
}

// Flat is a single unbounded bracket at rate.
func Flat(rate float64) []Bracket {
	return []Bracket{{Lower: 0, Rate: rate}}
}
