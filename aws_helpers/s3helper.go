package aws_helpers

import (
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	log "github.com/sirupsen/logrus"
)

// RetryDelay is the base delay between listing attempts.
var RetryDelay = 2 * time.Second

// ListKeys returns every key in bucket starting with prefix.
func ListKeys(svc s3iface.S3API, bucket string, prefix string) ([]string, error) {
	var keys []string

	err := retry.Do(
		func() error {
			keys = keys[:0]
			return svc.ListObjectsV2Pages(&s3.ListObjectsV2Input{
				Bucket: aws.String(bucket),
				Prefix: aws.String(prefix),
			}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
				for _, obj := range page.Contents {
					keys = append(keys, aws.StringValue(obj.Key))
				}
				return true
			})
		},
		retry.Attempts(3),
		retry.Delay(RetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("Listing s3://%s/%s failed (attempt %d): %v", bucket, prefix, n+1, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Debugf("Listed %d keys under s3://%s/%s", len(keys), bucket, prefix)
	return keys, nil
}
