package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tempuslabs/globre/glob"
	utils "github.com/tempuslabs/globre/utils"
)

type compileResult struct {
	Pattern string `json:"pattern"`
	glob.CompiledPattern
}

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile <pattern>...",
	Short: "Print the regular expression each pattern compiles to",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions()
		err := runCompile(cmd.OutOrStdout(), args, opts.Glob, opts.JSON)
		utils.PanicIfError("Unable to write output - ", err)
	},
}

func runCompile(out io.Writer, patterns []string, opts glob.Options, asJSON bool) error {
	for _, p := range patterns {
		compiled := glob.Parse(p, opts)
		if err := writeResult(out, asJSON, compileResult{Pattern: p, CompiledPattern: compiled}, compiled.String()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
