package cmd

import (
	"fmt"

	"github.com/DRL/acc2fasta/info"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of acc2fasta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("acc2fasta -- %s\n", info.Version)
	},
}
