package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Destination writes JSONL snapshots to an S3-compatible bucket. Every
// export is uploaded under a timestamped key so history accumulates, and the
// configured base key is overwritten to always hold the latest snapshot.
type S3Destination struct {
	client *s3.Client
	bucket string
	key    string
	now    func() time.Time
}

// NewS3Destination creates an S3 destination writing under the given base
// key. If endpoint is non-empty, path-style addressing is enabled (for MinIO
// and similar).
func NewS3Destination(ctx context.Context, bucket, key, region, endpoint string) (*S3Destination, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return &S3Destination{
		client: s3.NewFromConfig(cfg, s3opts...),
		bucket: bucket,
		key:    key,
		now:    time.Now,
	}, nil
}

// Write uploads data twice: once under a timestamped history key and once
// under the base key. The history upload goes first so the base key is never
// newer than the newest history entry.
func (d *S3Destination) Write(ctx context.Context, data []byte) error {
	for _, key := range []string{timestampedKey(d.key, d.now()), d.key} {
		if err := d.put(ctx, key, data); err != nil {
			return err
		}
	}
	return nil
}

func (d *S3Destination) put(ctx context.Context, key string, data []byte) error {
	contentType := "application/x-ndjson"
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}

// timestampedKey inserts a UTC timestamp before the base key's extension:
// "lens/searches.jsonl" becomes "lens/searches-20240615T143000Z.jsonl".
func timestampedKey(base string, now time.Time) string {
	stamp := now.UTC().Format("20060102T150405Z")
	ext := path.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + stamp + ext
}
