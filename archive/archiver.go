package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"balitai/types"
)

// Archiver writes scan responses to S3 as JSON snapshots, one object per
// scan, keyed by date and scan ID.
type Archiver struct {
	s3     *S3
	bucket string
	prefix string
}

// NewArchiverFromEnv creates an Archiver when S3_BUCKET is set and returns
// (nil, nil) otherwise. Recognized variables: S3_BUCKET, S3_PREFIX,
// AWS_REGION (via the SDK chain).
func NewArchiverFromEnv(ctx context.Context) (*Archiver, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	prefix := os.Getenv("S3_PREFIX")
	if prefix == "" {
		prefix = "scans"
	}

	s3Client, err := NewS3(ctx, S3Config{Region: os.Getenv("AWS_REGION")})
	if err != nil {
		return nil, fmt.Errorf("creating S3 client: %w", err)
	}

	log.Printf("✅ S3 archiver enabled (bucket: %s, prefix: %s)", bucket, prefix)
	return &Archiver{s3: s3Client, bucket: bucket, prefix: prefix}, nil
}

// ArchiveScan stores one scan response. The key embeds the scan date so
// objects list chronologically.
func (a *Archiver) ArchiveScan(ctx context.Context, resp *types.ScanResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling scan for archive: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s.json", a.prefix, resp.Timestamp.Format("2006-01-02"), resp.ScanID)
	if err := a.s3.Put(ctx, a.bucket, key, bytes.NewReader(payload), "application/json"); err != nil {
		return fmt.Errorf("uploading scan archive: %w", err)
	}
	return nil
}

// ListScans returns the scan IDs archived on the given date (YYYY-MM-DD).
func (a *Archiver) ListScans(ctx context.Context, date string) ([]string, error) {
	keyPrefix := fmt.Sprintf("%s/%s/", a.prefix, date)
	keys, err := a.s3.List(ctx, a.bucket, keyPrefix, 1000)
	if err != nil {
		return nil, fmt.Errorf("listing scan archive: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		id := strings.TrimSuffix(strings.TrimPrefix(key, keyPrefix), ".json")
		ids = append(ids, id)
	}
	return ids, nil
}

// LoadScan fetches one archived scan response by date and scan ID.
func (a *Archiver) LoadScan(ctx context.Context, date, scanID string) (*types.ScanResponse, error) {
	key := fmt.Sprintf("%s/%s/%s.json", a.prefix, date, scanID)
	body, err := a.s3.Get(ctx, a.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("fetching archived scan %s: %w", key, err)
	}
	defer body.Close()

	var resp types.ScanResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding archived scan %s: %w", key, err)
	}
	return &resp, nil
}
