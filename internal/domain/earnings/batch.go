package earnings

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"netpay/internal/domain/tax"
)

const MaxBatchRows = 5000

// BatchRow is one CSV input line. Values stay as text so they go through
// the same permissive parsing as the form.
type BatchRow struct {
	HourlyWage     string `csv:"hourly_wage"`
	Employment     string `csv:"employment"`
	State          string `csv:"state"`
	HoursWorked    string `csv:"hours_worked"`
	HoursScheduled string `csv:"hours_scheduled"`
}

type BatchResult struct {
	HourlyWage      string `csv:"hourly_wage"`
	EmploymentClass string `csv:"employment"`
	StateCode       string `csv:"state"`
	HoursBasis      string `csv:"hours_basis"`
	GrossPay        string `csv:"gross_pay"`
	FederalTax      string `csv:"federal_tax"`
	StateTax        string `csv:"state_tax"`
	FICATax         string `csv:"fica_tax"`
	NetPay          string `csv:"net_pay"`
}

func (row BatchRow) Form() FormInput {
	return FormInput{
		Income:               Field(row.HourlyWage),
		Employment:           Field(row.Employment),
		State:                Field(row.State),
		Hours:                Field(row.HoursWorked),
		HoursToBeWorkedToday: Field(row.HoursScheduled),
	}
}

// ComputeBatch reads rows from r, computes each one and writes the results
// as CSV to w. It returns the number of rows written.
func ComputeBatch(reg *tax.Registry, r io.Reader, w io.Writer) (int, error) {
	var rows []BatchRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBatchRead, err)
	}
	if len(rows) == 0 {
		return 0, ErrBatchEmpty
	}
	if len(rows) > MaxBatchRows {
		return 0, fmt.Errorf("%w: %d rows, limit %d", ErrBatchTooLarge, len(rows), MaxBatchRows)
	}

	out := make([]BatchResult, 0, len(rows))
	for _, row := range rows {
		b := Explain(reg, ParseForm(reg, row.Form()))
		out = append(out, BatchResult{
			HourlyWage:      money(b.HourlyWage),
			EmploymentClass: string(b.EmploymentClass),
			StateCode:       b.StateCode,
			HoursBasis:      strconv.FormatFloat(b.HoursBasis, 'f', -1, 64),
			GrossPay:        money(b.GrossPay),
			FederalTax:      money(b.FederalTax),
			StateTax:        money(b.StateTax),
			FICATax:         money(b.FICATax),
			NetPay:          money(b.NetPay),
		})
	}
	if err := gocsv.Marshal(out, w); err != nil {
		return 0, fmt.Errorf("write batch: %w", err)
	}
	return len(out), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
