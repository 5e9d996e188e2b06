package earnings

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WriteStatement renders a one-page PDF earnings statement for b.
func WriteStatement(w io.Writer, b Breakdown, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("NetPay earnings estimate", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Earnings estimate")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", generatedAt.UTC().Format("2006-01-02 15:04 MST")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Classification: %s", classLabel(b.EmploymentClass)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("State: %s", stateLabel(b)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Hourly wage: %.2f  Hours: %.2f", b.HourlyWage, b.HoursBasis))
	pdf.Ln(10)

	rows := []struct {
		label  string
		amount float64
	}{
		{"Gross pay", b.GrossPay},
		{"Federal income tax", b.FederalTax},
		{"State income tax", b.StateTax},
		{ficaLabel(b.EmploymentClass), b.FICATax},
		{"Total deductions", b.Deductions},
	}
	for _, row := range rows {
		pdf.CellFormat(110, 8, row.label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("$%.2f", row.amount), "B", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(110, 10, "Net pay", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, fmt.Sprintf("$%.2f", b.NetPay), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 9)
	if b.StateNote != "" {
		pdf.MultiCell(0, 5, "Note: "+b.StateNote, "", "L", false)
	}
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"Estimate only. Taxes use 2025 single-filer brackets annualized at %d hours per year and are not payroll-grade.",
		FullTimeHoursPerYear,
	), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrStatementRender, err)
	}
	return nil
}

func classLabel(c EmploymentClass) string {
	switch c {
	case ClassW2:
		return "W-2 employee"
	case ClassSelfEmployed:
		return "Self-employed / 1099"
	case "":
		return "not given"
	}
	return string(c)
}

func ficaLabel(c EmploymentClass) string {
	if c == ClassSelfEmployed {
		return "Self-employment tax"
	}
	return "FICA (Social Security + Medicare)"
}

func stateLabel(b Breakdown) string {
	switch {
	case !b.StateKnown:
		return b.StateCode + " (not recognised, no state tax)"
	case b.StateExempt:
		return b.StateName + " (no income tax)"
	}
	return b.StateName
}
