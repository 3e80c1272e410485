package accession

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// scanState drives the single-pass CSV token scan. A token that is not
// an accession becomes the identifier context for every accession
// token that follows, until the next non-accession token.
type scanState int

const (
	seekingIdentifier scanState = iota
	collectingAccessions
)

// quotedSep splits CSV lines on a quote-comma-quote or
// quote-underscore-quote boundary, after all whitespace in the line
// has been converted to underscores. Malformed quoting yields odd
// tokens on purpose: the confirmation prompt is the safety net.
var quotedSep = regexp.MustCompile(`"[,_]"`)

// ParseTxt reads one accession per line. The first pattern match in a
// line wins; a non-empty line without a match is recorded as a
// warning and skipped.
func ParseTxt(r io.Reader) (*Result, error) {
	res := newResult()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		acc := linePattern.FindString(line)
		if acc == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: no accession found in %q, skipped", n, line))
			continue
		}
		res.add(acc)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read query file")
	}
	return res, nil
}

// ParseCsv tokenizes delimited records and assigns accession tokens to
// the most recently seen identifier token. The identifier context
// carries across lines, so one record may span several lines as long
// as its quoting does.
func ParseCsv(r io.Reader) (*Result, error) {
	res := newResult()
	scanner := bufio.NewScanner(r)
	state := seekingIdentifier
	identifier := ""
	n := 0
	for scanner.Scan() {
		n++
		line := whitespace.ReplaceAllString(scanner.Text(), "_")
		if line == "" {
			continue
		}
		for _, token := range quotedSep.Split(line, -1) {
			token = strings.Trim(token, `"`)
			if token == "" || token == "_" {
				continue
			}
			if !tokenPattern.MatchString(token) {
				identifier = token
				state = collectingAccessions
				// Register the group even if no accession follows,
				// so the confirmation display exposes bad splits.
				if _, ok := res.Groups[identifier]; !ok {
					res.Groups[identifier] = nil
				}
				continue
			}
			if state == seekingIdentifier {
				res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: accession %s appears before any identifier", n, token))
			}
			res.Groups[identifier] = append(res.Groups[identifier], token)
			res.add(token)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read query file")
	}
	return res, nil
}
