package options

import "github.com/tempuslabs/globre/glob"

// Options carries everything a command needs, assembled from flags,
// environment and config file.
type Options struct {
	Glob  glob.Options
	JSON  bool
	Debug bool

	// object listing
	Bucket         string
	Region         string
	AwsProfile     string
	AwsRoleArn     string
	IsGCS          bool
	GCSCredentials string
	Archive        string
	Parallelism    int
}

// Source names where `ls` reads keys from.
func (o Options) Source() string {
	switch {
	case o.Archive != "":
		return "zip"
	case o.IsGCS:
		return "gcs"
	}
	return "s3"
}
