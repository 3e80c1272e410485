package cmd

import (
	"os"

	"github.com/DRL/acc2fasta/confirm"
	"github.com/DRL/acc2fasta/entrez"
	"github.com/DRL/acc2fasta/flags"
	"github.com/DRL/acc2fasta/info"
	"github.com/DRL/acc2fasta/pipeline"
	"github.com/DRL/acc2fasta/sanitize"
	"github.com/mattrbianchi/twig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var debug bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug output. Mostly for developers.")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		panic("INTERNAL ERROR: could not bind debug flag to debug environment variable")
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Silent, flags.SilentName, "s", false, flags.SilentMsg)
	if err := viper.BindPFlag(flags.SilentName, rootCmd.PersistentFlags().Lookup(flags.SilentName)); err != nil {
		panic("INTERNAL ERROR: could not bind silent flag to silent environment variable")
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, flags.VerboseName, "v", false, flags.VerboseMsg)
	if err := viper.BindPFlag(flags.VerboseName, rootCmd.PersistentFlags().Lookup(flags.VerboseName)); err != nil {
		panic("INTERNAL ERROR: could not bind verbose flag to verbose environment variable")
	}

	rootCmd.Flags().StringVarP(&flags.Query, flags.QueryName, "q", "", flags.QueryMsg)
	if err := viper.BindPFlag(flags.QueryName, rootCmd.Flags().Lookup(flags.QueryName)); err != nil {
		panic("INTERNAL ERROR: could not bind query flag to query environment variable")
	}

	rootCmd.Flags().StringVarP(&flags.List, flags.ListName, "l", "", flags.ListMsg)
	if err := viper.BindPFlag(flags.ListName, rootCmd.Flags().Lookup(flags.ListName)); err != nil {
		panic("INTERNAL ERROR: could not bind list flag to list environment variable")
	}

	rootCmd.Flags().IntVarP(&flags.Desc, flags.DescName, "", flags.DescDefault, flags.DescMsg)
	if err := viper.BindPFlag(flags.DescName, rootCmd.Flags().Lookup(flags.DescName)); err != nil {
		panic("INTERNAL ERROR: could not bind desc flag to desc environment variable")
	}

	rootCmd.Flags().BoolVarP(&flags.FullDesc, flags.FullDescName, "", false, flags.FullDescMsg)
	if err := viper.BindPFlag(flags.FullDescName, rootCmd.Flags().Lookup(flags.FullDescName)); err != nil {
		panic("INTERNAL ERROR: could not bind full-desc flag to full-desc environment variable")
	}

	rootCmd.Flags().BoolVarP(&flags.Whitespaces, flags.WhitespacesName, "w", false, flags.WhitespacesMsg)
	if err := viper.BindPFlag(flags.WhitespacesName, rootCmd.Flags().Lookup(flags.WhitespacesName)); err != nil {
		panic("INTERNAL ERROR: could not bind whitespaces flag to whitespaces environment variable")
	}

	rootCmd.Flags().StringVarP(&flags.Endpoint, flags.EndpointName, "e", "", flags.EndpointMsg)
	if err := viper.BindPFlag(flags.EndpointName, rootCmd.Flags().Lookup(flags.EndpointName)); err != nil {
		panic("INTERNAL ERROR: could not bind endpoint flag to endpoint environment variable")
	}

	viper.SetEnvPrefix(flags.EnvPrefix)
	viper.AutomaticEnv()
	info.BinaryName = "acc2fasta"
}

var rootCmd = &cobra.Command{
	Use:     "acc2fasta --query /path/to/accessions [flags]",
	Short:   "Convert a file of accession numbers into a FASTA file - " + info.Version,
	Long:    ``,
	Version: info.Version,
	Args:    cobra.NoArgs,
	RunE:    run,
}

func run(cmd *cobra.Command, args []string) error {
	setConfig()
	twig.Debug("got acc2fasta command")
	flags.FoldEnvVarsIntoFlagValues()
	twig.Debug("query: " + flags.Query)
	twig.Debug("list: " + flags.List)
	if flags.Query == "" {
		return errors.New("no query file provided")
	}
	if !flags.NoFileErrors(flags.Query) {
		return errors.Errorf("couldn't open query file at: %s", flags.Query)
	}
	if flags.List != "" && !flags.NoFileErrors(flags.List) {
		return errors.Errorf("couldn't open list file at: %s", flags.List)
	}
	if flags.Desc <= 0 {
		return errors.Errorf("description length must be positive, got: %d", flags.Desc)
	}
	opt := &pipeline.Options{
		QueryPath: flags.Query,
		ListPath:  flags.List,
		Sanitize: sanitize.Config{
			DescLen:     flags.Desc,
			FullDesc:    flags.FullDesc,
			Whitespaces: flags.Whitespaces,
		},
		Fetcher: entrez.NewClient(flags.Endpoint),
		Confirm: &confirm.Terminal{In: os.Stdin, Out: os.Stdout},
		Silent:  flags.Silent,
	}
	return pipeline.Run(opt)
}

// Execute runs the main command of acc2fasta.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		prettyPrintError(err)
		os.Exit(1)
	}
}

func setConfig() {
	// If debug flag gets set, print debug statements.
	twig.SetDebug(debug)
	if flags.Silent {
		flags.Verbose = false
	}
}
