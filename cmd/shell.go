package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/tempuslabs/globre/glob"
)

var shellSuggestions = []prompt.Suggest{
	{Text: ":split", Description: "Split a pattern into base and remainder"},
	{Text: ":resolve", Description: "Join a pattern onto a base: :resolve <base> <pattern>"},
	{Text: ":match", Description: "Test candidates: :match <pattern> <candidate>..."},
	{Text: "exit", Description: "Leave the shell"},
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Compile patterns interactively",
	Run: func(cmd *cobra.Command, args []string) {
		sh := &shell{
			opts:  buildOptions().Glob,
			cache: glob.NewCache(),
			out:   cmd.OutOrStdout(),
			exit:  os.Exit,
		}
		p := prompt.New(
			sh.execute,
			sh.complete,
			prompt.OptionPrefix("glob> "),
			prompt.OptionTitle("globre"),
		)
		p.Run()
	},
}

type shell struct {
	opts  glob.Options
	cache *glob.Cache
	out   io.Writer
	exit  func(int)
}

func (sh *shell) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "exit", "quit":
		sh.exit(0)
	case ":split":
		for _, p := range fields[1:] {
			res := glob.Split(p, sh.opts)
			fmt.Fprintf(sh.out, "base=%s pattern=%s\n", res.Base, res.Pattern)
		}
	case ":resolve":
		if len(fields) != 3 {
			fmt.Fprintln(sh.out, "usage: :resolve <base> <pattern>")
			return
		}
		fmt.Fprintln(sh.out, glob.ResolveWith(fields[1], fields[2], sh.opts))
	case ":match":
		if len(fields) < 3 {
			fmt.Fprintln(sh.out, "usage: :match <pattern> <candidate>...")
			return
		}
		for _, c := range fields[2:] {
			ok, err := sh.cache.Match(fields[1], sh.opts, c)
			if err != nil {
				fmt.Fprintf(sh.out, "error: %v\n", err)
				return
			}
			fmt.Fprintf(sh.out, "%s\t%t\n", c, ok)
		}
	default:
		fmt.Fprintln(sh.out, glob.Parse(line, sh.opts))
	}
}

func (sh *shell) complete(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	if strings.Contains(before, " ") {
		return nil
	}
	return prompt.FilterHasPrefix(shellSuggestions, d.GetWordBeforeCursor(), true)
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
