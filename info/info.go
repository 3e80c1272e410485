package info

var (
	// Version should be set at compile time to `git describe --tags --abbrev=0`
	Version string
	// BinaryName should be set on init in order to know what binary is using the flags library.
	BinaryName string
	// EutilsDb is the Entrez database queried for nucleotide accessions.
	EutilsDb = "nuccore"
)
