package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"

	"mtg-indexer/core/objstore"
)

// Source abstracts where corpus files are read from.
type Source interface {
	// Open returns a reader for the named file.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// List returns the file names under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// DirSource reads corpus files from a local directory.
type DirSource struct {
	root string
}

// NewDirSource creates a Source rooted at the given directory.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (s *DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", name, err)
	}
	return f, nil
}

func (s *DirSource) List(ctx context.Context, prefix string) ([]string, error) {
	dir := filepath.Join(s.root, prefix)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus dir %s: %w", prefix, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, filepath.Join(prefix, e.Name()))
	}
	return names, nil
}

// BucketSource reads corpus files from an object storage bucket.
type BucketSource struct {
	client objstore.Client
	bucket string
}

// NewBucketSource creates a Source backed by the given bucket.
func NewBucketSource(client objstore.Client, bucket string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket}
}

func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch corpus object %s: %w", name, err)
	}
	return rc, nil
}

func (s *BucketSource) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list corpus objects under %s: %w", prefix, info.Err)
		}
		if strings.HasSuffix(info.Key, ".json") {
			names = append(names, info.Key)
		}
	}
	return names, nil
}

// NewSource builds the Source selected by the configuration.
func NewSource(cfg Config, objCfg objstore.Config) (Source, error) {
	switch cfg.Source {
	case SourceDir, "":
		return NewDirSource(cfg.DataDir), nil
	case SourceBucket:
		client, err := objstore.NewClient(objCfg)
		if err != nil {
			return nil, err
		}
		return NewBucketSource(client, objCfg.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown corpus source %q", cfg.Source)
	}
}
