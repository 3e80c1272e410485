// Package confirm gates the run on an interactive inspection of the
// parsed accessions.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DRL/acc2fasta/accession"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Confirmer answers a strict yes/no question. Tests inject canned
// answers instead of a real prompt.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Terminal prompts on Out and reads answers from In, re-prompting
// until it gets a y or n, case-insensitive. No default, no timeout.
type Terminal struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (t *Terminal) Confirm(question string) (bool, error) {
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}
	for {
		fmt.Fprintf(t.Out, "%s [y/n]: ", question)
		line, err := t.reader.ReadString('\n')
		if err != nil && line == "" {
			return false, errors.Wrap(err, "failed to read confirmation answer")
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if err != nil {
			// Input ended on a non-answer.
			return false, errors.Wrap(err, "failed to read confirmation answer")
		}
	}
}

var (
	selected   = color.New(color.FgGreen).SprintFunc()
	deselected = color.New(color.FgRed).SprintFunc()
)

// ShowGroups prints each identifier with the accessions parsed under
// it, identifiers sorted lexicographically. When filtered is true,
// selected accessions are green and deselected ones red.
func ShowGroups(w io.Writer, groups map[string][]string, records map[string]*accession.Record, filtered bool) {
	for _, identifier := range accession.SortedIdentifiers(groups) {
		accs := groups[identifier]
		shown := make([]string, 0, len(accs))
		for _, a := range accs {
			if !filtered {
				shown = append(shown, a)
				continue
			}
			if rec, ok := records[a]; ok && rec.Selected {
				shown = append(shown, selected(a))
			} else {
				shown = append(shown, deselected(a))
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", identifier, strings.Join(shown, ","))
	}
}

// ShowCounts prints each accession with its occurrence count,
// sorted lexicographically. Used for plain text queries, which have
// no identifier groups.
func ShowCounts(w io.Writer, records map[string]*accession.Record) {
	for _, a := range accession.Sorted(records) {
		fmt.Fprintf(w, "%s (x%d)\n", a, records[a].Count)
	}
}
