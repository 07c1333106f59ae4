package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tempuslabs/globre/glob"
	utils "github.com/tempuslabs/globre/utils"
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split <pattern>...",
	Short: "Split patterns into their literal base and wildcard remainder",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions()
		err := runSplit(cmd.OutOrStdout(), args, opts.Glob, opts.JSON)
		utils.PanicIfError("Unable to write output - ", err)
	},
}

func runSplit(out io.Writer, patterns []string, opts glob.Options, asJSON bool) error {
	for _, p := range patterns {
		res := glob.Split(p, opts)
		if err := writeResult(out, asJSON, res, fmt.Sprintf("%s\t%s", res.Base, res.Pattern)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
