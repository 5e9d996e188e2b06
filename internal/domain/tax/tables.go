package tax

// 2025 single-filer tables. Lower bounds follow the published thresholds;
// each bracket runs up to the next threshold.

const FederalCode = "US"

func builtinFederal() Jurisdiction {
	return Taxed(FederalCode, "Federal", Thresholds(
		[2]float64{0, 0.10},
		[2]float64{11926, 0.12},
		[2]float64{48476, 0.22},
		[2]float64{103351, 0.24},
		[2]float64{197301, 0.32},
		[2]float64{250526, 0.35},
		[2]float64{626351, 0.37},
	))
}

const noIncomeTax = "No state income tax"

func builtinStates() []Jurisdiction {
	return []Jurisdiction{
		Taxed("AL", "Alabama", Thresholds(
			[2]float64{0, 0.02},
			[2]float64{501, 0.04},
			[2]float64{3001, 0.05},
		)),
		Exempt("AK", "Alaska", noIncomeTax),
		Taxed("AZ", "Arizona", Flat(0.025)),
		Taxed("AR", "Arkansas", Thresholds(
			[2]float64{0, 0.02},
			[2]float64{5101, 0.04},
			[2]float64{10201, 0.049},
		)),
		Taxed("CA", "California", Thresholds(
			[2]float64{0, 0.01},
			[2]float64{10100, 0.02},
			[2]float64{23943, 0.04},
			[2]float64{37789, 0.06},
			[2]float64{52456, 0.08},
			[2]float64{66296, 0.093},
			[2]float64{338640, 0.103},
			[2]float64{406365, 0.113},
			[2]float64{677276, 0.133},
		)),
		Taxed("CO", "Colorado", Flat(0.0425)),
		Taxed("CT", "Connecticut", Thresholds(
			[2]float64{0, 0.03},
			[2]float64{10001, 0.05},
			[2]float64{50001, 0.055},
			[2]float64{100001, 0.06},
		)),
		Taxed("DE", "Delaware", Thresholds(
			[2]float64{0, 0},
			[2]float64{2001, 0.022},
			[2]float64{5001, 0.039},
			[2]float64{10001, 0.048},
			[2]float64{20001, 0.052},
			[2]float64{25001, 0.0555},
			[2]float64{60001, 0.066},
		)),
		Exempt("FL", "Florida", noIncomeTax),
		Taxed("GA", "Georgia", Flat(0.0549)),
		Taxed("HI", "Hawaii", Thresholds(
			[2]float64{0, 0.014},
			[2]float64{2401, 0.032},
			[2]float64{4801, 0.055},
			[2]float64{9601, 0.064},
			[2]float64{14401, 0.068},
			[2]float64{21601, 0.076},
			[2]float64{36001, 0.079},
			[2]float64{48001, 0.0825},
			[2]float64{150001, 0.09},
			[2]float64{175001, 0.10},
			[2]float64{225001, 0.11},
		)),
		Taxed("ID", "Idaho", Flat(0.058)),
		Taxed("IL", "Illinois", Flat(0.0495)),
		Taxed("IN", "Indiana", Flat(0.0315)),
		Taxed("IA", "Iowa", Thresholds(
			[2]float64{0, 0.044},
			[2]float64{6261, 0.0482},
			[2]float64{25041, 0.057},
			[2]float64{56341, 0.06},
		)),
		Taxed("KS", "Kansas", Thresholds(
			[2]float64{0, 0.031},
			[2]float64{15001, 0.0525},
			[2]float64{30001, 0.057},
		)),
		Taxed("KY", "Kentucky", Flat(0.045)),
		Taxed("LA", "Louisiana", Thresholds(
			[2]float64{0, 0.016},
			[2]float64{12501, 0.034},
			[2]float64{50001, 0.0425},
		)),
		Taxed("ME", "Maine", Thresholds(
			[2]float64{0, 0.058},
			[2]float64{24501, 0.0675},
			[2]float64{58051, 0.0715},
		)),
		Taxed("MD", "Maryland", Thresholds(
			[2]float64{0, 0.02},
			[2]float64{1001, 0.03},
			[2]float64{2001, 0.04},
			[2]float64{3001, 0.0475},
			[2]float64{100001, 0.05},
			[2]float64{125001, 0.0525},
			[2]float64{150001, 0.055},
			[2]float64{250001, 0.0575},
		)),
		Taxed("MA", "Massachusetts", Flat(0.05)),
		Taxed("MI", "Michigan", Flat(0.0425)),
		Taxed("MN", "Minnesota", Thresholds(
			[2]float64{0, 0.0535},
			[2]float64{32451, 0.068},
			[2]float64{106361, 0.0785},
			[2]float64{197851, 0.0985},
		)),
		Taxed("MS", "Mississippi", Thresholds(
			[2]float64{0, 0},
			[2]float64{10001, 0.048},
		)),
		Taxed("MO", "Missouri", Thresholds(
			[2]float64{0, 0.015},
			[2]float64{1114, 0.02},
			[2]float64{2227, 0.025},
			[2]float64{3340, 0.03},
			[2]float64{4453, 0.035},
			[2]float64{5566, 0.04},
			[2]float64{6679, 0.045},
			[2]float64{7792, 0.049},
			[2]float64{8905, 0.051},
		)),
		Taxed("MT", "Montana", Thresholds(
			[2]float64{0, 0.047},
			[2]float64{21101, 0.059},
		)),
		Taxed("NE", "Nebraska", Thresholds(
			[2]float64{0, 0.024},
			[2]float64{3701, 0.0351},
			[2]float64{22171, 0.0501},
			[2]float64{35731, 0.066},
		)),
		Exempt("NV", "Nevada", noIncomeTax),
		Exempt("NH", "New Hampshire", "No state income tax on earned income"),
		Taxed("NJ", "New Jersey", Thresholds(
			[2]float64{0, 0.014},
			[2]float64{20001, 0.0175},
			[2]float64{35001, 0.035},
			[2]float64{40001, 0.05525},
			[2]float64{75001, 0.0637},
			[2]float64{500001, 0.0897},
			[2]float64{1000001, 0.1075},
		)),
		Taxed("NM", "New Mexico", Thresholds(
			[2]float64{0, 0.017},
			[2]float64{5501, 0.032},
			[2]float64{11001, 0.047},
			[2]float64{16001, 0.049},
			[2]float64{210001, 0.059},
		)),
		Taxed("NY", "New York", Thresholds(
			[2]float64{0, 0.04},
			[2]float64{8501, 0.045},
			[2]float64{11701, 0.0525},
			[2]float64{13901, 0.059},
			[2]float64{80651, 0.0633},
			[2]float64{215401, 0.0685},
			[2]float64{1077551, 0.109},
		)).WithNote("NYC local tax: 3.078%-3.876%"),
		Taxed("NC", "North Carolina", Flat(0.0475)),
		Taxed("ND", "North Dakota", Thresholds(
			[2]float64{0, 0.011},
			[2]float64{44726, 0.0204},
			[2]float64{108726, 0.0227},
			[2]float64{240776, 0.0264},
			[2]float64{480051, 0.029},
		)),
		Taxed("OH", "Ohio", Thresholds(
			[2]float64{0, 0},
			[2]float64{26051, 0.0185},
			[2]float64{49251, 0.0259},
			[2]float64{98451, 0.0333},
		)),
		Taxed("OK", "Oklahoma", Thresholds(
			[2]float64{0, 0.005},
			[2]float64{1001, 0.01},
			[2]float64{2501, 0.02},
			[2]float64{3751, 0.03},
			[2]float64{4901, 0.04},
			[2]float64{7201, 0.0475},
		)),
		Taxed("OR", "Oregon", Thresholds(
			[2]float64{0, 0.0475},
			[2]float64{4051, 0.0675},
			[2]float64{10201, 0.0875},
			[2]float64{125001, 0.099},
		)),
		Taxed("PA", "Pennsylvania", Flat(0.0307)),
		Taxed("RI", "Rhode Island", Thresholds(
			[2]float64{0, 0.0375},
			[2]float64{73226, 0.0475},
			[2]float64{166951, 0.0599},
		)),
		Taxed("SC", "South Carolina", Thresholds(
			[2]float64{0, 0},
			[2]float64{3461, 0.03},
			[2]float64{17301, 0.064},
		)),
		Exempt("SD", "South Dakota", noIncomeTax),
		Exempt("TN", "Tennessee", noIncomeTax),
		Exempt("TX", "Texas", noIncomeTax),
		Taxed("UT", "Utah", Flat(0.0485)),
		Taxed("VT", "Vermont", Thresholds(
			[2]float64{0, 0.0335},
			[2]float64{45126, 0.066},
			[2]float64{108751, 0.076},
			[2]float64{233351, 0.0875},
		)),
		Taxed("VA", "Virginia", Thresholds(
			[2]float64{0, 0.02},
			[2]float64{3001, 0.03},
			[2]float64{5001, 0.05},
			[2]float64{17001, 0.0575},
		)),
		Exempt("WA", "Washington", noIncomeTax),
		Taxed("WV", "West Virginia", Thresholds(
			[2]float64{0, 0.03},
			[2]float64{10001, 0.04},
			[2]float64{25001, 0.045},
			[2]float64{40001, 0.06},
			[2]float64{60001, 0.065},
		)),
		Taxed("WI", "Wisconsin", Thresholds(
			[2]float64{0, 0.035},
			[2]float64{14581, 0.044},
			[2]float64{29161, 0.058},
			[2]float64{405111, 0.0765},
		)),
		Exempt("WY", "Wyoming", noIncomeTax),
	}
}
