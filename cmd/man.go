package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(manCmd)
}

var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Print the full manual of acc2fasta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(manual)
	},
}

const manual = `NAME

  acc2fasta - convert a file of accession numbers into a FASTA file

SYNOPSIS

  acc2fasta --query FILE [--list FILE] [--desc N] [--full-desc]
            [--whitespaces] [--endpoint URL] [-d|-s|-v]

DESCRIPTION

  acc2fasta reads accession numbers (one or two uppercase letters
  followed by 3-7 digits, e.g. AB123456) from a query file, fetches
  the corresponding nucleotide sequences from the Entrez efetch API
  one request at a time, cleans up each FASTA header, and writes the
  records to <query>.fas. A usage log of every parsed accession and
  its occurrence count is written to <query>.log as comma separated
  "accession,count" lines, sorted by accession.

  A query file ending in .csv (case-insensitive) is parsed as
  delimited records: every token that is not an accession becomes the
  identifier for the accession tokens that follow it. Any other
  extension is parsed as plain text, one accession per line; lines
  without an accession are skipped with a warning.

  Before anything is fetched, the parsed identifiers and accessions
  are displayed and must be confirmed with y or n. Answering n aborts
  the run without writing any output.

OPTIONS

  --query, -q FILE   accession file to convert (required)
  --list, -l FILE    only fetch accessions belonging to an identifier
                     listed in FILE, one identifier per line (CSV
                     queries only); output goes to <query>_list.fas
                     and the selection must be confirmed a second time
  --desc N           keep at most N characters of the sanitized
                     description (default 50)
  --full-desc        keep the whole description, ignore --desc
  --whitespaces, -w  keep whitespace in descriptions and separate the
                     accession with a space instead of an underscore
  --endpoint, -e URL ADVANCED: override the efetch endpoint
  --debug, -d        developer output
  --silent, -s       print nothing but prompts
  --verbose, -v      print everything, including HTTP traffic

HEADERS

  Fetched headers of the form >gi|<num>|gb|<acc>|<description> lose
  their first four pipe fields. The description is stripped of the
  characters ,.;:=() and truncated to the --desc limit. The output
  header is ><accession>_<description>, with an underscore replacing
  every whitespace run unless --whitespaces is given.

FILES

  <query>.fas        FASTA output
  <query>_list.fas   FASTA output when --list was used
  <query>.log        accession,count log

ENVIRONMENT

  Every flag can also be set through $ACC2FASTA_<FLAG>, e.g.
  $ACC2FASTA_ENDPOINT.

EXAMPLES

  acc2fasta -q accessions.txt
  acc2fasta -q samples.csv -l keep.txt --desc 30
  acc2fasta -q samples.csv --full-desc -w
`
