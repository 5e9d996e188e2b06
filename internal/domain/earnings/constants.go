package earnings

const (
	HoursPerWeek = 40
	WeeksPerYear = 52

	// FullTimeHoursPerYear is the fixed annualization basis. Annual tax is
	// estimated as if the wage were earned full time, then pro-rated by the
	// hours in the period.
	FullTimeHoursPerYear = HoursPerWeek * WeeksPerYear

	SocialSecurityWageBase = 176100

	SocialSecurityRate = 0.062
	MedicareRate       = 0.0145

	SelfEmploymentRate               = 0.153
	SelfEmploymentSocialSecurityRate = 0.124
	SelfEmploymentMedicareRate       = 0.029
)

const (
	ClassW2           EmploymentClass = "w2"
	ClassSelfEmployed EmploymentClass = "self-employed"
)

// Classes the form offers besides the two taxed ones. They owe no FICA.
var advisoryClasses = []EmploymentClass{"employer", "itin", "other"}
