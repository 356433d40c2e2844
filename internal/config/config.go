package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DatabaseURL string // LENS_DATABASE_URL (required)
	HTTPAddr    string // LENS_HTTP_ADDR (default ":8080")
	NATSURL     string // LENS_NATS_URL (optional, empty = no events)
	AuthToken   string // LENS_AUTH_TOKEN (optional, empty = auth disabled)

	// Snapshot export settings
	SnapshotInterval   time.Duration // LENS_SNAPSHOT_INTERVAL (default 15m; 0 = disabled)
	SnapshotS3Bucket   string        // LENS_SNAPSHOT_S3_BUCKET (enables S3 when set)
	SnapshotS3Endpoint string        // LENS_SNAPSHOT_S3_ENDPOINT (custom endpoint for MinIO)
	SnapshotS3Region   string        // LENS_SNAPSHOT_S3_REGION (default "us-east-1")
	SnapshotS3Key      string        // LENS_SNAPSHOT_S3_KEY (default "lens/searches.jsonl")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:        os.Getenv("LENS_DATABASE_URL"),
		HTTPAddr:           envOrDefault("LENS_HTTP_ADDR", ":8080"),
		NATSURL:            os.Getenv("LENS_NATS_URL"),
		AuthToken:          os.Getenv("LENS_AUTH_TOKEN"),
		SnapshotS3Bucket:   os.Getenv("LENS_SNAPSHOT_S3_BUCKET"),
		SnapshotS3Endpoint: os.Getenv("LENS_SNAPSHOT_S3_ENDPOINT"),
		SnapshotS3Region:   envOrDefault("LENS_SNAPSHOT_S3_REGION", "us-east-1"),
		SnapshotS3Key:      envOrDefault("LENS_SNAPSHOT_S3_KEY", "lens/searches.jsonl"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("LENS_DATABASE_URL is required")
	}

	intervalStr := envOrDefault("LENS_SNAPSHOT_INTERVAL", "15m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("LENS_SNAPSHOT_INTERVAL: %w", err)
		}
		c.SnapshotInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
