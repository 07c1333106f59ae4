package gcs_helpers

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/avast/retry-go/v4"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// NewClient creates a storage client, authenticating with credentialsFile
// when given and application default credentials otherwise.
func NewClient(ctx context.Context, credentialsFile string) (*storage.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	return storage.NewClient(ctx, opts...)
}

type objectIterator interface {
	Next() (*storage.ObjectAttrs, error)
}

// ListKeys returns the names of every object in bucket starting with prefix.
func ListKeys(ctx context.Context, client *storage.Client, bucket string, prefix string) ([]string, error) {
	var keys []string
	err := retry.Do(
		func() error {
			var err error
			keys, err = collect(client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: prefix}))
			return err
		},
		retry.Attempts(3),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}

	log.Debugf("Listed %d objects under gs://%s/%s", len(keys), bucket, prefix)
	return keys, nil
}

func collect(it objectIterator) ([]string, error) {
	var keys []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			return keys, nil
		}
		if err != nil {
			return nil, err
		}
		// directory placeholders carry no object name of their own
		if attrs.Name == "" {
			continue
		}
		keys = append(keys, attrs.Name)
	}
}
