package accession

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// WriteLog writes one "accession,count" line per parsed accession,
// sorted by accession. Deselected accessions are logged too.
func WriteLog(path string, records map[string]*Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "couldn't open log file at: %s", path)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, acc := range Sorted(records) {
		fmt.Fprintf(w, "%s,%d\n", acc, records[acc].Count)
	}
	return errors.Wrapf(w.Flush(), "couldn't write log file at: %s", path)
}
