package storage

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	objects []string
	expiry  time.Duration
	exists  bool
	err     error
}

func (f *fakePresigner) PresignedGetObject(_ context.Context, bucket, object string, expiry time.Duration, _ url.Values) (*url.URL, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.objects = append(f.objects, object)
	f.expiry = expiry
	return url.Parse("http://minio.local/" + bucket + "/" + object + "?X-Amz-Signature=abc")
}

func (f *fakePresigner) BucketExists(context.Context, string) (bool, error) {
	return f.exists, f.err
}

func TestImageStorage_Resolve(t *testing.T) {
	fake := &fakePresigner{exists: true}
	s := newImageStorage(fake, "images", 15*time.Minute)
	ctx := context.Background()

	got, err := s.Resolve(ctx, "https://upload.wikimedia.org/poster.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://upload.wikimedia.org/poster.jpg", got)

	got, err = s.Resolve(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Resolve(ctx, "/covers/dune.png")
	require.NoError(t, err)
	assert.Equal(t, "http://minio.local/images/covers/dune.png?X-Amz-Signature=abc", got)
	assert.Equal(t, []string{"covers/dune.png"}, fake.objects)
	assert.Equal(t, 15*time.Minute, fake.expiry)
}

func TestImageStorage_ResolveError(t *testing.T) {
	s := newImageStorage(&fakePresigner{err: errors.New("signature failed")}, "images", 0)

	_, err := s.Resolve(context.Background(), "covers/dune.png")
	assert.ErrorContains(t, err, "signature failed")
	assert.Equal(t, time.Hour, s.expiry)
}

func TestImageStorage_Ping(t *testing.T) {
	assert.NoError(t, newImageStorage(&fakePresigner{exists: true}, "images", 0).Ping(context.Background()))
	assert.Error(t, newImageStorage(&fakePresigner{exists: false}, "images", 0).Ping(context.Background()))
}

// Presign выполняется локально, сеть не нужна
func TestImageStorage_MinioPresign(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)

	s := newImageStorage(client, "images", time.Hour)
	got, err := s.GetURL(context.Background(), "covers/dune.png")
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/images/covers/dune.png", u.Path)
	assert.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
