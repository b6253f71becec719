package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "svparse",
		Short:        "svparse",
		SilenceUsage: true,
		Long:         `CLI tool for parsing SystemVerilog/Verilog source text into a lossless concrete syntax tree.`,
	}

	versionName string
	maxDepth    int
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&versionName, "version", "v", "2017", "language version to lex keywords against (1995, 2001, 2005, 2009, 2012, 2017)")
	rootCmd.PersistentFlags().IntVarP(&maxDepth, "max-depth", "m", 0, "recursion-limit override (0 uses the default)")
	return rootCmd.Execute()
}

func init() {
}
