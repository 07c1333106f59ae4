package cmd

import (
	"bufio"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tempuslabs/globre/glob"
	utils "github.com/tempuslabs/globre/utils"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <pattern> [candidate...]",
	Short: "Print the candidates a pattern matches",
	Long: `Compiles the pattern and prints every candidate it matches. Candidates
    are taken from the remaining arguments, or read line by line from
    standard input when none are given.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions()

		candidates := args[1:]
		if len(candidates) == 0 {
			var err error
			candidates, err = readLines(cmd.InOrStdin())
			utils.PanicIfError("Unable to read candidates - ", err)
		}

		matched, err := matchCandidates(glob.NewCache(), args[0], opts.Glob, candidates)
		utils.PanicIfError("Unable to match candidates - ", err)
		log.Debugf("'%s' matched %d of %d candidates", args[0], len(matched), len(candidates))

		for _, m := range matched {
			err := writeResult(cmd.OutOrStdout(), opts.JSON, map[string]string{"match": m}, m)
			utils.PanicIfError("Unable to write output - ", err)
		}
	},
}

func matchCandidates(cache *glob.Cache, pattern string, opts glob.Options, candidates []string) ([]string, error) {
	var matched []string
	for _, c := range candidates {
		ok, err := cache.Match(pattern, opts, c)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
