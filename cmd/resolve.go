package cmd

import (
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tempuslabs/globre/glob"
	utils "github.com/tempuslabs/globre/utils"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <base> <pattern>",
	Short: "Join a pattern onto a base directory, keeping its negation",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		base, err := homedir.Expand(args[0])
		if err != nil {
			log.Fatalf("Unable to expand base '%s': %v", args[0], err)
		}
		opts := buildOptions()
		resolved := glob.ResolveWith(base, args[1], opts.Glob)
		err = writeResult(cmd.OutOrStdout(), opts.JSON, map[string]string{"pattern": resolved}, resolved)
		utils.PanicIfError("Unable to write output - ", err)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
