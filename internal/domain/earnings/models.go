package earnings

import "strings"

type EmploymentClass string

// ParseClass normalizes a classification. "1099" and the common spellings
// of self-employed map to ClassSelfEmployed; anything else is kept as given.
func ParseClass(raw string) EmploymentClass {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "w2", "w-2":
		return ClassW2
	case "self-employed", "self_employed", "selfemployed", "1099", "se":
		return ClassSelfEmployed
	}
	return EmploymentClass(normalized)
}

func (c EmploymentClass) Known() bool {
	if c == ClassW2 || c == ClassSelfEmployed {
		return true
	}
	for _, advisory := range advisoryClasses {
		if c == advisory {
			return true
		}
	}
	return false
}

// Input describes one pay period. When HoursScheduledToday is set it
// replaces HoursWorkedSoFar as the pay basis.
type Input struct {
	HourlyWage          float64         `json:"hourlyWage"`
	EmploymentClass     EmploymentClass `json:"employmentClass"`
	StateCode           string          `json:"stateCode"`
	HoursWorkedSoFar    float64         `json:"hoursWorkedSoFar"`
	HoursScheduledToday *float64        `json:"hoursScheduledToday,omitempty"`
}

func (in Input) HoursBasis() float64 {
	if in.HoursScheduledToday != nil {
		return sanitize(*in.HoursScheduledToday)
	}
	return sanitize(in.HoursWorkedSoFar)
}

type Result struct {
	GrossPay   float64 `json:"grossPay"`
	FederalTax float64 `json:"federalTax"`
	StateTax   float64 `json:"stateTax"`
	FICATax    float64 `json:"ficaTax"`
	NetPay     float64 `json:"netPay"`
}

// Breakdown is a Result with the intermediate figures used to produce it.
type Breakdown struct {
	Result
	Deductions      float64         `json:"deductions"`
	HoursBasis      float64         `json:"hoursBasis"`
	HourlyWage      float64         `json:"hourlyWage"`
	AnnualIncome    float64         `json:"annualIncome"`
	SocialSecurity  float64         `json:"socialSecurity"`
	Medicare        float64         `json:"medicare"`
	EmploymentClass EmploymentClass `json:"employmentClass"`
	StateCode       string          `json:"stateCode"`
	StateName       string          `json:"stateName,omitempty"`
	StateNote       string          `json:"stateNote,omitempty"`
	StateKnown      bool            `json:"stateKnown"`
	StateExempt     bool            `json:"stateExempt"`
}
