package cmd

import (
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tempuslabs/globre/glob"
	options "github.com/tempuslabs/globre/options"
)

// buildOptions collects flags, environment and config file into Options.
func buildOptions() options.Options {
	base := viper.GetString("base")
	if base != "" {
		expanded, err := homedir.Expand(base)
		if err != nil {
			log.Fatalf("Unable to expand base '%s': %v", base, err)
		}
		base = expanded
	}

	opts := options.Options{
		Glob: glob.Options{
			Dot:        viper.GetBool("dot"),
			NoBrace:    viper.GetBool("no-brace"),
			NoCase:     viper.GetBool("no-case"),
			NoExtGlob:  viper.GetBool("no-ext-glob"),
			NoGlobStar: viper.GetBool("no-globstar"),
			NoNegate:   viper.GetBool("no-negate"),
			Base:       base,
		},
		JSON:           viper.GetBool("json"),
		Debug:          viper.GetBool("debug"),
		Bucket:         viper.GetString("bucket"),
		Region:         viper.GetString("region"),
		AwsProfile:     viper.GetString("aws-profile"),
		AwsRoleArn:     viper.GetString("aws-role-arn"),
		IsGCS:          viper.GetBool("is-gcs"),
		GCSCredentials: viper.GetString("gcs-credentials"),
		Archive:        viper.GetString("archive"),
		Parallelism:    viper.GetInt("parallelism"),
	}

	log.Debugf("Captured options: %+v", opts)
	return opts
}
