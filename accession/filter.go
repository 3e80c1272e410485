package accession

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ParseList reads a filter file of identifiers, one per line. Lines
// are taken verbatim after trimming trailing whitespace and collapsing
// any residual whitespace to underscores, so they compare equal to the
// identifiers produced by the CSV scan.
func ParseList(r io.Reader) (map[string]bool, error) {
	accepted := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		accepted[whitespace.ReplaceAllString(line, "_")] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read list file")
	}
	return accepted, nil
}

// ApplyFilter deselects every record, then re-selects each accession
// belonging to at least one accepted identifier. Counts are left
// untouched so the log still reports what was parsed.
func ApplyFilter(res *Result, accepted map[string]bool) {
	for _, rec := range res.Records {
		rec.Selected = false
	}
	for identifier, accs := range res.Groups {
		if !accepted[identifier] {
			continue
		}
		for _, a := range accs {
			if rec, ok := res.Records[a]; ok {
				rec.Selected = true
			}
		}
	}
}
