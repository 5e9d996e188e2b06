package earnings

import (
	"bytes"
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"

	"netpay/internal/domain/tax"
)

// Field is a form value that decodes from a JSON string, number or null.
type Field string

func (f *Field) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = Field(s)
		return nil
	}
	*f = Field(trimmed)
	return nil
}

func (f Field) String() string {
	return string(f)
}

func (f Field) Blank() bool {
	return strings.TrimSpace(string(f)) == ""
}

// FormInput is the raw calculator form as a browser submits it.
type FormInput struct {
	Income               Field `json:"income"`
	Employment           Field `json:"employment"`
	State                Field `json:"state"`
	Hours                Field `json:"hours"`
	HoursToBeWorkedToday Field `json:"hoursToBeWorkedToday"`
}

// UnmarshalJSON accepts the form keys and the typed Input names
// (hourlyWage, employmentClass, stateCode, hoursWorkedSoFar,
// hoursScheduledToday). A form key wins when both are given.
func (f *FormInput) UnmarshalJSON(data []byte) error {
	type formKeys FormInput
	var raw struct {
		formKeys
		HourlyWage          Field `json:"hourlyWage"`
		EmploymentClass     Field `json:"employmentClass"`
		StateCode           Field `json:"stateCode"`
		HoursWorkedSoFar    Field `json:"hoursWorkedSoFar"`
		HoursScheduledToday Field `json:"hoursScheduledToday"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = FormInput(raw.formKeys)
	f.Income = firstSet(f.Income, raw.HourlyWage)
	f.Employment = firstSet(f.Employment, raw.EmploymentClass)
	f.State = firstSet(f.State, raw.StateCode)
	f.Hours = firstSet(f.Hours, raw.HoursWorkedSoFar)
	f.HoursToBeWorkedToday = firstSet(f.HoursToBeWorkedToday, raw.HoursScheduledToday)
	return nil
}

func firstSet(primary, alias Field) Field {
	if primary.Blank() {
		return alias
	}
	return primary
}

func FormFromQuery(values url.Values) FormInput {
	return FormInput{
		Income:               Field(values.Get("income")),
		Employment:           Field(values.Get("employment")),
		State:                Field(values.Get("state")),
		Hours:                Field(values.Get("hours")),
		HoursToBeWorkedToday: Field(values.Get("hoursToBeWorkedToday")),
	}
}

// ParseForm converts raw form values without rejecting anything. Numbers
// that cannot be read become 0 and a blank hoursToBeWorkedToday means the
// hours worked so far are the pay basis.
func ParseForm(reg *tax.Registry, form FormInput) Input {
	if reg == nil {
		reg = tax.Builtin()
	}
	state, _ := reg.ResolveState(form.State.String())
	in := Input{
		HourlyWage:       ParseNumber(form.Income.String()),
		EmploymentClass:  ParseClass(form.Employment.String()),
		StateCode:        state,
		HoursWorkedSoFar: ParseNumber(form.Hours.String()),
	}
	if !form.HoursToBeWorkedToday.Blank() {
		scheduled := ParseNumber(form.HoursToBeWorkedToday.String())
		in.HoursScheduledToday = &scheduled
	}
	return in
}

const maxNumberLen = 64

// ParseNumber reads the leading decimal number of raw, so "12.5h" is 12.5.
// Only plain decimal notation with an optional exponent is read. Anything
// without a usable prefix, and any negative, out of range or non-finite
// value, is 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if len(s) > maxNumberLen {
		s = s[:maxNumberLen]
	}
	token := decimalPrefix(s)
	if token == "" {
		return 0
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// decimalPrefix returns the longest prefix of s shaped like
// [+-]digits[.digits][e[+-]digits] with at least one mantissa digit.
func decimalPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			end = j
		}
	}
	return s[:end]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Issue is one problem found by Validate.
type Issue struct {
	Field  string
	Reason string
}

// Validate reports what ParseForm would silently normalize. It is only
// used when a caller asks for strict checking.
func Validate(reg *tax.Registry, form FormInput) []Issue {
	if reg == nil {
		reg = tax.Builtin()
	}
	var issues []Issue

	checkNumber := func(field string, value Field, required bool) {
		if value.Blank() {
			if required {
				issues = append(issues, Issue{Field: field, Reason: "is required"})
			}
			return
		}
		trimmed := strings.TrimSpace(value.String())
		if decimalPrefix(trimmed) != trimmed {
			issues = append(issues, Issue{Field: field, Reason: "must be a number"})
			return
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			issues = append(issues, Issue{Field: field, Reason: "must be a number"})
			return
		}
		if v < 0 {
			issues = append(issues, Issue{Field: field, Reason: "must not be negative"})
		}
	}

	checkNumber("income", form.Income, true)
	checkNumber("hours", form.Hours, form.HoursToBeWorkedToday.Blank())
	checkNumber("hoursToBeWorkedToday", form.HoursToBeWorkedToday, false)

	if form.Employment.Blank() {
		issues = append(issues, Issue{Field: "employment", Reason: "is required"})
	} else if !ParseClass(form.Employment.String()).Known() {
		issues = append(issues, Issue{Field: "employment", Reason: "must be one of w2, self-employed, 1099, employer, itin, other"})
	}

	if form.State.Blank() {
		issues = append(issues, Issue{Field: "state", Reason: "is required"})
	} else if _, ok := reg.ResolveState(form.State.String()); !ok {
		issues = append(issues, Issue{Field: "state", Reason: "must be a U.S. state code or name"})
	}

	return issues
}
