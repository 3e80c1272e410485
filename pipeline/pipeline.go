// Package pipeline runs the whole conversion: parse the query file,
// confirm the parsing with the user, write the usage log, then fetch
// and sanitize every selected accession into the FASTA output.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/DRL/acc2fasta/accession"
	"github.com/DRL/acc2fasta/confirm"
	"github.com/DRL/acc2fasta/entrez"
	"github.com/DRL/acc2fasta/flags"
	"github.com/DRL/acc2fasta/sanitize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Options carries everything one run needs. Fetcher and Confirmer are
// interfaces so tests can run the pipeline without a terminal or a
// network.
type Options struct {
	QueryPath string
	ListPath  string

	Sanitize sanitize.Config

	Fetcher entrez.Fetcher
	Confirm confirm.Confirmer

	// Out receives the confirmation display, warnings and progress.
	// Defaults to os.Stdout.
	Out io.Writer
	// Silent suppresses warnings and progress, not prompts.
	Silent bool
}

var warnColor = color.New(color.FgYellow)

// Run executes parse, confirm, log and fetch, strictly in that order
// and fully sequentially. It returns on the first fatal condition; no
// output file exists before the user has confirmed the parsing.
func Run(opt *Options) error {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	csv := flags.CsvQuery(opt.QueryPath)

	res, err := parseQuery(opt.QueryPath, csv)
	if err != nil {
		return err
	}
	opt.warnAll(res.Warnings)
	if len(res.Records) == 0 {
		return errors.New("no accessions found in query file")
	}

	if csv {
		confirm.ShowGroups(opt.Out, res.Groups, res.Records, false)
	} else {
		confirm.ShowCounts(opt.Out, res.Records)
	}
	if err := opt.gate("Is the parsing correct?"); err != nil {
		return err
	}

	filtered := false
	if opt.ListPath != "" {
		if !csv {
			opt.warnf("list file %s ignored, filtering needs a CSV query", opt.ListPath)
		} else {
			if err := applyList(opt.ListPath, res); err != nil {
				return err
			}
			filtered = true
			confirm.ShowGroups(opt.Out, res.Groups, res.Records, true)
			if err := opt.gate("Is the selection correct?"); err != nil {
				return err
			}
		}
	}

	if err := accession.WriteLog(opt.QueryPath+".log", res.Records); err != nil {
		opt.warnf("%v, continuing without a log", err)
	}

	outPath := opt.QueryPath + ".fas"
	if filtered {
		outPath = opt.QueryPath + "_list.fas"
	}
	return opt.fetchAll(res.Records, outPath)
}

func parseQuery(path string, csv bool) (*accession.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open query file at: %s", path)
	}
	defer f.Close()
	if csv {
		return accession.ParseCsv(f)
	}
	return accession.ParseTxt(f)
}

func applyList(path string, res *accession.Result) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "couldn't open list file at: %s", path)
	}
	defer f.Close()
	accepted, err := accession.ParseList(f)
	if err != nil {
		return err
	}
	accession.ApplyFilter(res, accepted)
	return nil
}

// fetchAll fetches every selected accession in lexicographic order,
// one blocking request at a time, and appends the sanitized record to
// the output file. A failed fetch degrades to a bare header and a
// warning, it never aborts the run.
func (opt *Options) fetchAll(records map[string]*accession.Record, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "couldn't create output file at: %s", outPath)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	todo := make([]string, 0, len(records))
	for _, acc := range accession.Sorted(records) {
		if rec := records[acc]; rec.Selected && rec.Count > 0 {
			todo = append(todo, acc)
		}
	}
	for i, acc := range todo {
		start := time.Now()
		raw, err := opt.Fetcher.Fetch(acc)
		if err != nil {
			opt.warnf("%v", err)
		}
		secs := int(time.Since(start).Seconds())
		for _, line := range sanitize.Sanitize(acc, sanitize.ParseRecord(raw), opt.Sanitize) {
			fmt.Fprintln(w, line)
		}
		opt.progressf("fetched %s in %ds (%d/%d)", acc, secs, i+1, len(todo))
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "couldn't write output file at: %s", outPath)
	}
	return nil
}

func (opt *Options) gate(question string) error {
	ok, err := opt.Confirm.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("parsing rejected")
	}
	return nil
}

func (opt *Options) warnAll(warnings []string) {
	for _, w := range warnings {
		opt.warnf("%s", w)
	}
}

func (opt *Options) warnf(format string, args ...interface{}) {
	if opt.Silent {
		return
	}
	warnColor.Fprintf(opt.Out, "warning: "+format+"\n", args...)
}

func (opt *Options) progressf(format string, args ...interface{}) {
	if opt.Silent {
		return
	}
	fmt.Fprintf(opt.Out, format+"\n", args...)
}
