package tax

// Bracket is a [Lower, Upper) income range taxed at Rate. A nil Upper
// means the bracket is unbounded.
type Bracket struct {
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper,omitempty"`
	Rate  float64  `json:"rate"`
}

type Kind int

const (
	KindTaxed Kind = iota
	KindExempt
)

func (k Kind) String() string {
	switch k {
	case KindTaxed:
		return "taxed"
	case KindExempt:
		return "exempt"
	default:
		return "unknown"
	}
}

// Jurisdiction is either Taxed with a bracket table or Exempt. Construct
// values with Taxed or Exempt; the zero value is an exempt jurisdiction
// with no code.
type Jurisdiction struct {
	Code     string
	Name     string
	Note     string
	kind     Kind
	brackets []Bracket
}

func Taxed(code, name string, brackets []Bracket) Jurisdiction {
	out := make([]Bracket, len(brackets))
	copy(out, brackets)
	return Jurisdiction{Code: code, Name: name, kind: KindTaxed, brackets: out}
}

func Exempt(code, name, note string) Jurisdiction {
	return Jurisdiction{Code: code, Name: name, Note: note, kind: KindExempt}
}

func (j Jurisdiction) WithNote(note string) Jurisdiction {
	j.Note = note
	return j
}

func (j Jurisdiction) Kind() Kind {
	if j.kind == KindTaxed && len(j.brackets) > 0 {
		return KindTaxed
	}
	return KindExempt
}

func (j Jurisdiction) IsExempt() bool {
	return j.Kind() == KindExempt
}

// Brackets returns a copy of the table, or nil for exempt jurisdictions.
func (j Jurisdiction) Brackets() []Bracket {
	if j.IsExempt() {
		return nil
	}
	out := make([]Bracket, len(j.brackets))
	copy(out, j.brackets)
	return out
}

// AnnualTax evaluates the jurisdiction's brackets against an annual income.
func (j Jurisdiction) AnnualTax(annualIncome float64) float64 {
	switch j.Kind() {
	case KindTaxed:
		return Evaluate(annualIncome, j.brackets)
	case KindExempt:
		return 0
	}
	return 0
}

// Summary is the listing view of a jurisdiction.
type Summary struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Exempt       bool   `json:"exempt"`
	Note         string `json:"note,omitempty"`
	BracketCount int    `json:"bracketCount"`
}

// Detail is the full view of a jurisdiction including its brackets.
type Detail struct {
	Summary
	Brackets []Bracket `json:"brackets"`
}

func (j Jurisdiction) Summary() Summary {
	return Summary{
		Code:         j.Code,
		Name:         j.Name,
		Exempt:       j.IsExempt(),
		Note:         j.Note,
		BracketCount: len(j.Brackets()),
	}
}

func (j Jurisdiction) Detail() Detail {
	brackets := j.Brackets()
	if brackets == nil {
		brackets = []Bracket{}
	}
	return Detail{Summary: j.Summary(), Brackets: brackets}
}
