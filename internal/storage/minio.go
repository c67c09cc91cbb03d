package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// SnapshotArchive keeps point-in-time copies of the document blob in a MinIO
// bucket: pre-merge backups taken before a pull overwrites local state, and
// quarantined payloads that failed to parse. Nothing in the request path
// reads these back; they exist for manual recovery.
type SnapshotArchive struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewSnapshotArchive creates the archive client and ensures the bucket exists.
func NewSnapshotArchive(cfg *MinIOConfig) (*SnapshotArchive, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	a := &SnapshotArchive{client: mc, bucket: cfg.Bucket, prefix: "snapshots/"}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, a.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return a, nil
}

// SaveSnapshot stores payload under snapshots/<name>-<timestamp>.json. The
// timestamp suffix keeps successive snapshots from overwriting each other.
func (a *SnapshotArchive) SaveSnapshot(ctx context.Context, name string, payload []byte) error {
	key := fmt.Sprintf("%s%s-%s.json", a.prefix, name, time.Now().UTC().Format("20060102T150405.000"))
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}

// OpenSnapshot returns a reader for a stored snapshot key.
func (a *SnapshotArchive) OpenSnapshot(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// stat to surface not-found before the caller starts reading
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// ListSnapshots returns the stored snapshot keys, newest first.
func (a *SnapshotArchive) ListSnapshots(ctx context.Context) ([]string, error) {
	keys := []string{}
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: a.prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, nil
}
