package main

import (
	"github.com/DRL/acc2fasta/cmd"
	"github.com/mattrbianchi/twig"
)

func init() {
	twig.SetFlags(twig.LstdFlags | twig.Lshortfile)
}

func main() {
	cmd.Execute()
}
