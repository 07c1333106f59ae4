package cmd

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	aws_helpers "github.com/tempuslabs/globre/aws_helpers"
	gcs_helpers "github.com/tempuslabs/globre/gcs_helpers"
	"github.com/tempuslabs/globre/glob"
	options "github.com/tempuslabs/globre/options"
	utils "github.com/tempuslabs/globre/utils"
	zip "github.com/tempuslabs/globre/zip"
)

// keyLister lists the keys of one source starting with a prefix.
type keyLister interface {
	ListKeys(prefix string) ([]string, error)
}

type s3Lister struct {
	svc    s3iface.S3API
	bucket string
}

func (l s3Lister) ListKeys(prefix string) ([]string, error) {
	return aws_helpers.ListKeys(l.svc, l.bucket, prefix)
}

type gcsLister struct {
	ctx    context.Context
	client *storage.Client
	bucket string
}

func (l gcsLister) ListKeys(prefix string) ([]string, error) {
	return gcs_helpers.ListKeys(l.ctx, l.client, l.bucket, prefix)
}

type zipLister struct {
	archive string
}

func (l zipLister) ListKeys(prefix string) ([]string, error) {
	return zip.ListEntriesWithPrefix(l.archive, prefix)
}

type lsResult struct {
	Pattern string `json:"pattern"`
	Key     string `json:"key"`
}

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls <pattern>...",
	Short: "List S3 keys, GCS objects or zip entries matching patterns",
	Long: `Lists the keys matching each pattern. The literal base of a pattern
    becomes the listing prefix so only the relevant part of a bucket is read;
    the compiled expression then filters the listed keys. Negated patterns
    list the whole source.`,
	Args: cobra.MinimumNArgs(1),
	// bug in Viper prevents shared flag names across different commands
	// placing these in the prerun is the workaround
	PreRun: func(cmd *cobra.Command, args []string) {
		for _, name := range []string{"bucket", "region", "aws-profile", "aws-role-arn", "is-gcs", "gcs-credentials", "archive", "parallelism"} {
			viper.BindPFlag(name, cmd.Flags().Lookup(name))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		opts := buildOptions()
		checkLsOptions(opts)

		lister := buildLister(cmd.Context(), opts)
		results, err := listMatches(lister, args, opts.Glob, opts.Parallelism)
		utils.PanicIfError("Unable to list keys - ", err)

		for _, r := range results {
			err := writeResult(cmd.OutOrStdout(), opts.JSON, r, r.Key)
			utils.PanicIfError("Unable to write output - ", err)
		}
		utils.Timing(start, "Elapsed time: %f")
	},
}

// Any assertions that need to be made regarding input arguments
func checkLsOptions(opts options.Options) {
	log.Debug("Checking input arguments...")

	if opts.Archive == "" && opts.Bucket == "" {
		log.Fatal("Need to supply either a bucket or an archive to list.")
	}
	if opts.Archive != "" && opts.Bucket != "" {
		log.Fatal("Do not use both the '--archive' parameter and '--bucket' parameter, as their behavior is exclusive.")
	}
	if opts.Source() == "s3" && opts.Region == "" {
		log.Fatal("Need to supply a region for the S3 bucket.")
	}
	if opts.Parallelism < 1 {
		log.Fatal("Parallelism must be at least 1.")
	}
}

func buildLister(ctx context.Context, opts options.Options) keyLister {
	if ctx == nil {
		ctx = context.Background()
	}
	switch opts.Source() {
	case "zip":
		return zipLister{archive: opts.Archive}
	case "gcs":
		client, err := gcs_helpers.NewClient(ctx, opts.GCSCredentials)
		utils.PanicIfError("Unable to create GCS client - ", err)
		return gcsLister{ctx: ctx, client: client, bucket: opts.Bucket}
	}
	sess := aws_helpers.GetAwsSession(opts)
	return s3Lister{svc: s3.New(sess), bucket: opts.Bucket}
}

// listPrefix is the key prefix that every match of pattern must start with.
func listPrefix(pattern string, opts glob.Options) string {
	if glob.IsNegated(pattern, opts) {
		return ""
	}
	if opts.Base != "" {
		pattern = glob.ResolveWith(opts.Base, pattern, opts)
	}
	base := glob.Split(pattern, opts).Base
	prefix := base + "/"
	switch base {
	case ".":
		return ""
	case "/":
		prefix = "/"
	}

	// quotes and escapes are glob syntax, not key text
	if i := strings.IndexAny(prefix, `'"\`); i >= 0 {
		prefix = prefix[:i]
	}
	// bucket listings compare prefixes case-sensitively
	if opts.NoCase {
		if i := strings.IndexFunc(prefix, isCased); i >= 0 {
			prefix = prefix[:i]
		}
	}
	return prefix
}

func isCased(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// listMatches lists and filters keys for every pattern, running at most
// parallelism listings at a time. Results are sorted by pattern then key.
func listMatches(lister keyLister, patterns []string, opts glob.Options, parallelism int) ([]lsResult, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	cache := glob.NewCache()
	sem := make(chan int, parallelism)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		results  []lsResult
		firstErr error
	)

	wg.Add(len(patterns))
	for _, p := range patterns {
		go func(wg *sync.WaitGroup, pattern string) {
			sem <- 1
			defer func() { <-sem }()
			defer wg.Done()

			prefix := listPrefix(pattern, opts)
			log.Debugf("Listing prefix '%s' for pattern '%s'", prefix, pattern)
			keys, err := lister.ListKeys(prefix)
			if err == nil {
				keys, err = matchCandidates(cache, pattern, opts, keys)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for _, k := range keys {
				results = append(results, lsResult{Pattern: pattern, Key: k})
			}
		}(&wg, p)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Pattern != results[j].Pattern {
			return results[i].Pattern < results[j].Pattern
		}
		return strings.Compare(results[i].Key, results[j].Key) < 0
	})
	return results, nil
}

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().String("bucket", "", "The S3 or GCS bucket to list.")
	lsCmd.Flags().String("region", "", "The region of the S3 bucket.")
	lsCmd.Flags().String("aws-profile", "", "AWS Profile to use for the session.")
	lsCmd.Flags().String("aws-role-arn", "", "AWS Role ARN to assume for the session.")
	lsCmd.Flags().Bool("is-gcs", false, "List a GCS bucket instead of S3.")
	lsCmd.Flags().String("gcs-credentials", "", "Service account JSON file for GCS. Defaults to application default credentials.")
	lsCmd.Flags().String("archive", "", "List the entries of a local zip archive instead of a bucket.")
	lsCmd.Flags().Int("parallelism", 4, "The maximum number of patterns listed at a time.")
}
