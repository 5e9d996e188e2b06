package earnings

import (
	"math"

	"netpay/internal/domain/tax"
)

// Compute estimates pay for the period described by in. It never fails:
// bad figures count as zero, unknown states owe no state tax and unknown
// classifications owe no FICA. A nil registry uses the built-in tables.
func Compute(reg *tax.Registry, in Input) Result {
	return Explain(reg, in).Result
}

func Explain(reg *tax.Registry, in Input) Breakdown {
	if reg == nil {
		reg = tax.Builtin()
	}

	wage := sanitize(in.HourlyWage)
	hours := in.HoursBasis()
	class := ParseClass(string(in.EmploymentClass))
	stateCode := tax.NormalizeCode(in.StateCode)

	gross := wage * hours
	annualIncome := wage * FullTimeHoursPerYear
	if math.IsInf(gross, 0) || math.IsInf(annualIncome, 0) {
		wage, hours, gross, annualIncome = 0, 0, 0, 0
	}

	federal := prorate(reg.Federal().AnnualTax(annualIncome), hours)

	socialSecurity, medicare := fica(class, gross, hours)

	state, known := reg.State(stateCode)
	stateTax := 0.0
	if known {
		stateTax = prorate(state.AnnualTax(annualIncome), hours)
	}

	net := math.Max(gross-federal-(socialSecurity+medicare)-stateTax, 0)

	result := Result{
		GrossPay:   round2(gross),
		FederalTax: round2(federal),
		StateTax:   round2(stateTax),
		FICATax:    round2(socialSecurity + medicare),
		NetPay:     round2(net),
	}
	return Breakdown{
		Result:          result,
		Deductions:      round2(federal + stateTax + socialSecurity + medicare),
		HoursBasis:      hours,
		HourlyWage:      wage,
		AnnualIncome:    round2(annualIncome),
		SocialSecurity:  round2(socialSecurity),
		Medicare:        round2(medicare),
		EmploymentClass: class,
		StateCode:       stateCode,
		StateName:       state.Name,
		StateNote:       state.Note,
		StateKnown:      known,
		StateExempt:     known && state.IsExempt(),
	}
}

// fica splits the payroll tax into its social security and medicare parts.
// The social security part is capped at the wage base pro-rated to hours.
func fica(class EmploymentClass, gross, hours float64) (socialSecurity, medicare float64) {
	proratedBase := prorate(SocialSecurityWageBase, hours)
	switch class {
	case ClassW2:
		socialSecurity = math.Min(gross*SocialSecurityRate, proratedBase*SocialSecurityRate)
		medicare = gross * MedicareRate
	case ClassSelfEmployed:
		combined := math.Min(
			gross*SelfEmploymentRate,
			proratedBase*SelfEmploymentSocialSecurityRate+gross*SelfEmploymentMedicareRate,
		)
		medicare = gross * SelfEmploymentMedicareRate
		socialSecurity = combined - medicare
	}
	return socialSecurity, medicare
}

func prorate(annual, hours float64) float64 {
	return annual / FullTimeHoursPerYear * hours
}

// sanitize maps negative and non-finite figures to 0.
func sanitize(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// round2 rounds to cents. Figures too large to carry cents are already
// whole and are returned as is.
func round2(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		return v
	}
	return math.Round(v*100) / 100
}
