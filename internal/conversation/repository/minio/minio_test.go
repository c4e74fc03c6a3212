package minio

import (
	"context"
	"errors"
	"testing"

	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
)

type fakeStorage struct {
	pkgMinio.FileManager

	bucket string
	prefix string
	n      int
	err    error
}

func (f *fakeStorage) DeletePrefix(ctx context.Context, bucketName, prefix string) (int, error) {
	f.bucket, f.prefix = bucketName, prefix
	return f.n, f.err
}

func TestDeleteImages(t *testing.T) {
	t.Run("deletes under the conversation folder", func(t *testing.T) {
		s := &fakeStorage{n: 3}
		n, err := New(s, "chatbot-line-images", log.NewNop()).DeleteImages(context.Background(), "line_group_G1_U1")
		if err != nil {
			t.Fatal(err)
		}
		if n != 3 || s.bucket != "chatbot-line-images" || s.prefix != "line/line_group_G1_U1/" {
			t.Errorf("n = %d, bucket = %q, prefix = %q", n, s.bucket, s.prefix)
		}
	})

	t.Run("wraps storage errors", func(t *testing.T) {
		boom := errors.New("access denied")
		s := &fakeStorage{n: 1, err: boom}
		n, err := New(s, "chatbot-line-images", log.NewNop()).DeleteImages(context.Background(), "line_U1")
		if !errors.Is(err, boom) || n != 1 {
			t.Errorf("DeleteImages() = %d, %v", n, err)
		}
	})
}
