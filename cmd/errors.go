package cmd

import (
	"fmt"
	"strings"

	"github.com/mattrbianchi/twig"
)

func prettyPrintError(err error) {
	// Query errors
	if err.Error() == "no query file provided" {
		twig.Debug(err)
		fmt.Println("No query file provided: acc2fasta needs a file of accession numbers in order to know what sequences to fetch. Use --query to point it at one.")
		return
	}
	if strings.Contains(err.Error(), "couldn't open query file") {
		twig.Debug(err)
		fmt.Println("Bad query file or path: acc2fasta could not open the file given to the query flag. Make sure the path leads to a readable accession file and that you have permissions to read it. If you do and you're still getting this message, run with debug enabled for a more detailed error message.")
		return
	}
	if strings.Contains(err.Error(), "no accessions found") {
		twig.Debug(err)
		fmt.Println("Empty query file: acc2fasta parsed the query file but could not find a single accession in it. Accessions look like one or two uppercase letters followed by 3-7 digits, e.g. AB123456.")
		return
	}

	// List errors
	if strings.Contains(err.Error(), "couldn't open list file") {
		twig.Debug(err)
		fmt.Println("Bad list file or path: acc2fasta could not open the file given to the list flag. Make sure the path leads to a readable text file with one identifier per line and that you have permissions to read it.")
		return
	}

	// Confirmation errors
	if err.Error() == "parsing rejected" {
		twig.Debug(err)
		fmt.Println("Parsing rejected: you answered no at the confirmation prompt, so no output files were written. Fix the query or list file and run again.")
		return
	}

	// Output errors
	if strings.Contains(err.Error(), "couldn't create output file") || strings.Contains(err.Error(), "couldn't write output file") {
		twig.Debug(err)
		fmt.Println("Failed to write FASTA output: acc2fasta could not create or write the output file next to the query file. Check that the directory is writable and has enough free space.")
		return
	}

	twig.Debug(err)
	fmt.Println(err.Error())
}
