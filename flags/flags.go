package flags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	EnvPrefix = "acc2fasta"

	QueryName       = "query"
	ListName        = "list"
	DescName        = "desc"
	FullDescName    = "full-desc"
	WhitespacesName = "whitespaces"
	EndpointName    = "endpoint"
	SilentName      = "silent"
	VerboseName     = "verbose"

	Silent  bool
	Verbose bool

	Query       string
	List        string
	Desc        int
	DescDefault = 50
	FullDesc    bool
	Whitespaces bool
	Endpoint    string

	QueryMsg       = "A path to the accession file to convert.\nA \".csv\" extension (case-insensitive) selects CSV parsing, any other extension selects plain text parsing.\nEnvironment Variable: [$ACC2FASTA_QUERY]"
	ListMsg        = "A path to a text file of identifiers. Only accessions belonging to at least one listed identifier are fetched (CSV queries only).\nEnvironment Variable: [$ACC2FASTA_LIST]"
	DescMsg        = "Maximum length of the sanitized description kept in each FASTA header. Ignored when --full-desc is given.\nEnvironment Variable: [$ACC2FASTA_DESC]"
	FullDescMsg    = "Keep the entire sanitized description, no truncation.\nEnvironment Variable: [$ACC2FASTA_FULL-DESC]"
	WhitespacesMsg = "Preserve whitespace inside descriptions and separate the accession from the description with a space instead of an underscore.\nEnvironment Variable: [$ACC2FASTA_WHITESPACES]"
	EndpointMsg    = "ADVANCED: Change the endpoint used to fetch sequences from the Entrez efetch API.\nEnvironment Variable: [$ACC2FASTA_ENDPOINT]"
	SilentMsg      = "Prints nothing, most useful when running in scripts."
	VerboseMsg     = "Prints everything, including HTTP traffic, most useful for troubleshooting."
)

// CsvQuery reports whether path selects CSV parsing, decided by a
// case-insensitive extension match.
func CsvQuery(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

func NoFileErrors(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func HavePermissions(path string) bool {
	_, err := os.Stat(path)
	return !os.IsPermission(err)
}

func FoldEnvVarsIntoFlagValues() {
	ResolveString("endpoint", &Endpoint)
	ResolveInt("desc", &Desc)
	ResolveString("query", &Query)
	ResolveString("list", &List)
	ResolveBool("full-desc", &FullDesc)
	ResolveBool("whitespaces", &Whitespaces)
}

func ResolveString(name string, value *string) {
	if value == nil {
		return
	}
	if viper.IsSet(name) {
		env := viper.GetString(name)
		if env != "" {
			*value = env
		}
	}
}

func ResolveInt(name string, value *int) {
	if value == nil {
		return
	}
	if viper.IsSet(name) {
		env := viper.GetInt(name)
		if env != 0 {
			*value = env
		}
	}
}

func ResolveBool(name string, value *bool) {
	if value == nil {
		return
	}
	if viper.IsSet(name) {
		env := viper.GetBool(name)
		*value = env
	}
}
