// Package sanitize rewrites the header of a fetched FASTA record into
// a cleaned, length-bounded form while passing sequence lines through
// untouched.
package sanitize

import (
	"regexp"
	"strings"
)

// Config holds the header-cleaning knobs. Zero value means: truncate
// to DefaultDescLen, squash whitespace to underscores.
type Config struct {
	// DescLen is the maximum length of the cleaned description.
	DescLen int
	// FullDesc disables truncation entirely.
	FullDesc bool
	// Whitespaces preserves interior whitespace and uses a space to
	// separate the accession from the description.
	Whitespaces bool
}

// DefaultDescLen is the description length used when Config.DescLen
// is zero.
const DefaultDescLen = 50

// Record is one FASTA record as returned by the fetch collaborator.
type Record struct {
	// Header is the first line without its leading ">".
	Header string
	// SeqLines are the remaining lines, byte-for-byte.
	SeqLines []string
}

var (
	punctuation = strings.NewReplacer(",", "", ".", "", ";", "", ":", "", "=", "", "(", "", ")", "")
	whitespace  = regexp.MustCompile(`\s+`)
)

// ParseRecord splits raw fetched text into a header and its sequence
// lines. Trailing blank lines are dropped, interior lines are kept as
// they came. Empty or headerless input yields an empty record.
func ParseRecord(raw string) Record {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || !strings.HasPrefix(lines[0], ">") {
		return Record{}
	}
	return Record{Header: strings.TrimPrefix(lines[0], ">"), SeqLines: lines[1:]}
}

// CleanDescription reduces a raw header to the description that
// survives sanitization: the first four pipe-delimited fields (the
// gi|<num>|gb|<acc>| prefix) are discarded, leading whitespace is
// stripped, the characters ",.;:=()" are deleted, and, unless
// whitespace mode is on, whitespace runs become single underscores.
// Truncation is a plain prefix cut, no ellipsis.
func CleanDescription(header string, cfg Config) string {
	fields := strings.Split(header, "|")
	desc := ""
	if len(fields) > 4 {
		desc = strings.Join(fields[4:], "|")
	}
	desc = strings.TrimLeft(desc, " \t")
	desc = punctuation.Replace(desc)
	if !cfg.Whitespaces {
		desc = whitespace.ReplaceAllString(desc, "_")
	}
	if !cfg.FullDesc {
		max := cfg.DescLen
		if max == 0 {
			max = DefaultDescLen
		}
		if len(desc) > max {
			desc = desc[:max]
		}
	}
	return desc
}

// HeaderLine builds the output header for a record fetched under
// accession: ">" + accession + separator + cleaned description. The
// separator is an underscore, or a space in whitespace mode.
func HeaderLine(accession, header string, cfg Config) string {
	sep := "_"
	if cfg.Whitespaces {
		sep = " "
	}
	return ">" + accession + sep + CleanDescription(header, cfg)
}

// Sanitize returns the full output record: rewritten header followed
// by the untouched sequence lines.
func Sanitize(accession string, rec Record, cfg Config) []string {
	out := make([]string, 0, len(rec.SeqLines)+1)
	out = append(out, HeaderLine(accession, rec.Header, cfg))
	out = append(out, rec.SeqLines...)
	return out
}
