package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "globre",
	Short: "Compile extended shell globs into regular expressions",
	Long: `Turns shell-style glob patterns (wildcards, classes, braces, numeric and
    alphabetic ranges, extglob pattern lists, globstar and negation) into
    anchored regular expressions, and splits patterns into a literal base
    and a wildcard remainder.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.globre.yaml).")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging.")
	rootCmd.PersistentFlags().Bool("json", false, "Write results as JSON lines.")

	// glob options
	rootCmd.PersistentFlags().Bool("dot", false, "Let wildcards match a leading dot in a path segment.")
	rootCmd.PersistentFlags().Bool("no-brace", false, "Treat { and } literally.")
	rootCmd.PersistentFlags().Bool("no-case", false, "Match case-insensitively.")
	rootCmd.PersistentFlags().Bool("no-ext-glob", false, "Disable !() @() *() +() ?() pattern lists.")
	rootCmd.PersistentFlags().Bool("no-globstar", false, "Make ** behave like *.")
	rootCmd.PersistentFlags().Bool("no-negate", false, "Treat a leading ! literally.")
	rootCmd.PersistentFlags().String("base", "", "Directory relative patterns are resolved against. ~ is expanded.")

	for _, name := range []string{"debug", "json", "dot", "no-brace", "no-case", "no-ext-glob", "no-globstar", "no-negate", "base"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.InfoLevel)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".globre")
	}

	viper.SetEnvPrefix("globre")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	if err == nil {
		log.Debugf("Using config file '%s'", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Fatalf("Unable to read config file '%s': %v", cfgFile, err)
	}
}
