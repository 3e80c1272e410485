// Package accession parses query files into a unique accession to
// occurrence-count mapping, resolves optional identifier filters, and
// writes the usage log.
package accession

import (
	"regexp"
	"sort"
)

// pattern is what an accession looks like: one or two uppercase
// letters followed by 3-7 digits. linePattern finds the first match
// anywhere in a text line, tokenPattern requires a whole CSV token
// to be an accession.
var (
	linePattern  = regexp.MustCompile(`[A-Z]{1,2}[0-9]{3,7}`)
	tokenPattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{3,7}$`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Record tracks one unique accession across the whole run.
type Record struct {
	Accession string
	// Count is the number of raw occurrences seen while parsing.
	// It is never changed after parsing completes.
	Count int
	// Selected marks whether the accession survives the optional
	// identifier filter. Defaults to true when no filter is given.
	Selected bool
}

// Result is the outcome of parsing a query file.
type Result struct {
	// Records maps each unique accession to its record.
	Records map[string]*Record
	// Groups maps each identifier to the accessions listed under it,
	// in the order they were seen. Only populated by CSV parsing.
	Groups map[string][]string
	// Warnings collects non-fatal formatting diagnostics, one per
	// skipped or suspicious input line.
	Warnings []string
}

func newResult() *Result {
	return &Result{
		Records: make(map[string]*Record),
		Groups:  make(map[string][]string),
	}
}

func (r *Result) add(acc string) {
	rec, ok := r.Records[acc]
	if !ok {
		rec = &Record{Accession: acc, Selected: true}
		r.Records[acc] = rec
	}
	rec.Count++
}

// Sorted returns the accessions of records in lexicographic order.
func Sorted(records map[string]*Record) []string {
	aa := make([]string, 0, len(records))
	for a := range records {
		aa = append(aa, a)
	}
	sort.Strings(aa)
	return aa
}

// SortedIdentifiers returns the identifiers of groups in lexicographic order.
func SortedIdentifiers(groups map[string][]string) []string {
	ii := make([]string, 0, len(groups))
	for i := range groups {
		ii = append(ii, i)
	}
	sort.Strings(ii)
	return ii
}
