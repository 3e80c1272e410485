package accession

import (
	"strings"
	"testing"
)

func TestParseTxtCountsOccurrences(t *testing.T) {
	in := "AB123456\nprefix AB123456 suffix\nAB123456\nCD78901\n"
	res, err := ParseTxt(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseTxt: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if got := res.Records["AB123456"].Count; got != 3 {
		t.Errorf("AB123456 count = %d, want 3", got)
	}
	if got := res.Records["CD78901"].Count; got != 1 {
		t.Errorf("CD78901 count = %d, want 1", got)
	}
	for acc, rec := range res.Records {
		if !rec.Selected {
			t.Errorf("%s not selected by default", acc)
		}
	}
}

func TestParseTxtFirstMatchWins(t *testing.T) {
	res, err := ParseTxt(strings.NewReader("AB123456 and CD78901\n"))
	if err != nil {
		t.Fatalf("ParseTxt: %v", err)
	}
	if len(res.Records) != 1 || res.Records["AB123456"] == nil {
		t.Fatalf("records = %v, want only AB123456", res.Records)
	}
}

func TestParseTxtSkipsMalformedLinesWithWarning(t *testing.T) {
	in := "AB123456\nnot_an_acc\n\nAB123456\n"
	res, err := ParseTxt(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseTxt: %v", err)
	}
	if got := res.Records["AB123456"].Count; got != 2 {
		t.Errorf("AB123456 count = %d, want 2", got)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	if !strings.Contains(res.Warnings[0], "not_an_acc") {
		t.Errorf("warning %q does not name the bad line", res.Warnings[0])
	}
}

func TestParseCsvGroupsByIdentifier(t *testing.T) {
	in := `"sample one","AB123456","CD78901"
"other","EF345678"
`
	res, err := ParseCsv(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCsv: %v", err)
	}
	got := res.Groups["sample_one"]
	if len(got) != 2 || got[0] != "AB123456" || got[1] != "CD78901" {
		t.Errorf("sample_one group = %v, want [AB123456 CD78901]", got)
	}
	if other := res.Groups["other"]; len(other) != 1 || other[0] != "EF345678" {
		t.Errorf("other group = %v, want [EF345678]", other)
	}
	if got := res.Records["AB123456"].Count; got != 1 {
		t.Errorf("AB123456 count = %d, want 1", got)
	}
}

func TestParseCsvSharedAccessionCountsPerOccurrence(t *testing.T) {
	in := `"id1","AB123456"
"id2","AB123456"
`
	res, err := ParseCsv(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCsv: %v", err)
	}
	if got := res.Records["AB123456"].Count; got != 2 {
		t.Errorf("AB123456 count = %d, want 2", got)
	}
	if len(res.Groups["id1"]) != 1 || len(res.Groups["id2"]) != 1 {
		t.Errorf("groups = %v, want AB123456 under both id1 and id2", res.Groups)
	}
}

func TestParseCsvIdentifierCarriesAcrossLines(t *testing.T) {
	// One record spanning two lines keeps the identifier context.
	in := "\"id1\",\"AB123456\"\n\"CD78901\"\n"
	res, err := ParseCsv(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCsv: %v", err)
	}
	got := res.Groups["id1"]
	if len(got) != 2 || got[1] != "CD78901" {
		t.Errorf("id1 group = %v, want [AB123456 CD78901]", got)
	}
}

func TestParseCsvUnderscoreSeparator(t *testing.T) {
	// Whitespace between quoted tokens becomes an underscore separator.
	in := "\"id1\" \"AB123456\"\n"
	res, err := ParseCsv(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCsv: %v", err)
	}
	if got := res.Groups["id1"]; len(got) != 1 || got[0] != "AB123456" {
		t.Errorf("id1 group = %v, want [AB123456]", got)
	}
}

func TestParseCsvAccessionBeforeIdentifierWarns(t *testing.T) {
	res, err := ParseCsv(strings.NewReader("\"AB123456\",\"id1\",\"CD78901\"\n"))
	if err != nil {
		t.Fatalf("ParseCsv: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	if got := res.Records["AB123456"].Count; got != 1 {
		t.Errorf("AB123456 still counted, count = %d, want 1", got)
	}
	if got := res.Groups["id1"]; len(got) != 1 || got[0] != "CD78901" {
		t.Errorf("id1 group = %v, want [CD78901]", got)
	}
}

func TestParseCsvMalformedQuotingFallsBackToIdentifier(t *testing.T) {
	// An unquoted line never splits, the whole line becomes an
	// identifier. The confirmation display is the safety net here.
	res, err := ParseCsv(strings.NewReader("id1,AB123456\n"))
	if err != nil {
		t.Fatalf("ParseCsv: %v", err)
	}
	if len(res.Records) != 0 {
		t.Errorf("records = %v, want none", res.Records)
	}
	if _, ok := res.Groups["id1,AB123456"]; !ok {
		t.Errorf("groups = %v, want the whole line as identifier", res.Groups)
	}
}
