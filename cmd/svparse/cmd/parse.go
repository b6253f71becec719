package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hdlcore/svparse/svast"
	"github.com/hdlcore/svparse/svsyntax"
	"github.com/spf13/cobra"
)

var (
	keywordsFile string
	dumpTree     bool

	parseCmd = &cobra.Command{
		Use:   "parse file",
		Short: "Parse a SystemVerilog/Verilog source file and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <file>")
			}
			path := args[0]

			version, err := svsyntax.ParseVersionName(versionName)
			if err != nil {
				return err
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			opts := svsyntax.ParseOptions{MaxDepth: maxDepth, Logger: svsyntax.NewLogger()}

			var (
				root svast.SourceText
				fail *svsyntax.Failure
			)
			if keywordsFile != "" {
				overrides, err := svsyntax.LoadKeywordOverrides(keywordsFile)
				if err != nil {
					return err
				}
				ks, err := overrides.Apply(svsyntax.NewKeywordSet(version))
				if err != nil {
					return err
				}
				root, fail = svast.ParseWithKeywords(src, svsyntax.FileRef(path), ks, opts)
			} else {
				root, fail = svast.Parse(src, svsyntax.FileRef(path), version, opts)
			}
			if fail != nil {
				return fail
			}

			if dumpTree {
				fmt.Println(svast.Dump(root))
				return nil
			}
			fmt.Printf("%s: %d module(s), %d interface(s), %d program(s), %d package(s), %d class(es), %d config(s), %d primitive(s)\n",
				path, len(root.Modules.Items), len(root.Interfaces.Items), len(root.Programs.Items),
				len(root.Packages.Items), len(root.Classes.Items), len(root.Configs.Items), len(root.Primitives.Items))
			return nil
		},
	}
)

func init() {
	parseCmd.Flags().StringVar(&keywordsFile, "keywords", "", "optional YAML keyword-override file")
	parseCmd.Flags().BoolVar(&dumpTree, "dump", false, "print the full parsed tree instead of a summary")
	rootCmd.AddCommand(parseCmd)
}
