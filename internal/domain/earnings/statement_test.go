package earnings

import (
	"bytes"
	"testing"
	"time"
)

func TestWriteStatement(t *testing.T) {
	b := Explain(nil, ParseForm(nil, FormInput{
		Income:               "20",
		Employment:           "w2",
		State:                "NY",
		HoursToBeWorkedToday: "8",
	}))

	var buf bytes.Buffer
	if err := WriteStatement(&buf, b, time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("statement failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", buf.Bytes()[:min(buf.Len(), 16)])
	}
}

func TestStatementLabels(t *testing.T) {
	if got := ficaLabel(ClassSelfEmployed); got != "Self-employment tax" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := stateLabel(Breakdown{StateCode: "ZZ"}); got != "ZZ (not recognised, no state tax)" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := classLabel("itin"); got != "itin" {
		t.Fatalf("unexpected label %q", got)
	}
}
