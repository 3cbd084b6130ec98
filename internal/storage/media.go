// Package storage implements the media upload proxy. Uploaded files are
// forwarded to an S3-compatible object store and referenced everywhere
// else in the system only by their public URL.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStore wraps an object storage client for file uploads. Objects are
// keyed as folder/<uuid><ext> so concurrent uploads of identically named
// files never collide.
type MediaStore struct {
	client  *minio.Client
	bucket  string
	baseURL string // public URL prefix up to and including the bucket
}

// NewMediaStore connects to the object store and ensures the media bucket
// exists. baseURL overrides the public URL prefix; when empty it is
// derived from the endpoint and TLS flag.
func NewMediaStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, baseURL string) (*MediaStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("media bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("media make bucket: %w", err)
		}
	}

	if baseURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket)
	}
	return &MediaStore{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload streams a multipart file to the object store under the given
// folder and returns the public URL of the stored object. Content type is
// taken from the part header; PDFs and images travel the same path. Any
// upstream error is wrapped into a generic upload failure.
func (s *MediaStore) Upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer f.Close()

	key := objectKey(folder, fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = s.client.PutObject(ctx, s.bucket, key, f, fh.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Remove deletes a previously uploaded object given its public URL. It is
// used only to roll back staged uploads when a later step of the same
// request fails; superseded files referenced by persisted records are
// never removed.
func (s *MediaStore) Remove(ctx context.Context, publicURL string) error {
	key, ok := s.keyFromURL(publicURL)
	if !ok {
		return fmt.Errorf("remove: url %q is not in bucket %q", publicURL, s.bucket)
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *MediaStore) keyFromURL(publicURL string) (string, bool) {
	rest, found := strings.CutPrefix(publicURL, s.baseURL+"/")
	if !found || rest == "" {
		return "", false
	}
	return rest, true
}

// objectKey builds a collision-free object key, keeping the original file
// extension so the store serves the right content type.
func objectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := uuid.NewString() + ext
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
