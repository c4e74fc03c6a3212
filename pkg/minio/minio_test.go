package minio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"chatbot-srv/config"

	"github.com/minio/minio-go/v7"
)

func TestValidateConfig_AppendsDefaultPort(t *testing.T) {
	cfg := &config.MinIOConfig{Endpoint: "minio", AccessKey: "a", SecretKey: "s", Region: "us-east-1", Bucket: "chatbot-line-images"}
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("validateConfig() error = %v", err)
	}
	if cfg.Endpoint != "minio"+DefaultEndpointPort {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
}

func TestValidateUploadRequest(t *testing.T) {
	base := func() *UploadRequest {
		return &UploadRequest{BucketName: "b", ObjectName: "line/U1/1.jpg", Reader: strings.NewReader("x"), Size: 1, ContentType: "image/jpeg"}
	}
	if err := validateUploadRequest(base()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := map[string]func(*UploadRequest){
		"leading slash": func(r *UploadRequest) { r.ObjectName = "/x.jpg" },
		"no reader":     func(r *UploadRequest) { r.Reader = nil },
		"zero size":     func(r *UploadRequest) { r.Size = 0 },
		"no type":       func(r *UploadRequest) { r.ContentType = "" },
	}
	for name, mutate := range bad {
		t.Run(name, func(t *testing.T) {
			r := base()
			mutate(r)
			var se *StorageError
			if err := validateUploadRequest(r); !errors.As(err, &se) || se.Code != ErrCodeInvalidInput {
				t.Errorf("error = %v, want invalid input", err)
			}
		})
	}
}

func TestHandleMinIOError(t *testing.T) {
	if err := handleMinIOError(nil, "op"); err != nil {
		t.Errorf("nil error mapped to %v", err)
	}

	var se *StorageError
	err := handleMinIOError(minio.ErrorResponse{Code: "NoSuchKey"}, "get_file_info")
	if !errors.As(err, &se) || se.Code != ErrCodeObjectNotFound {
		t.Errorf("NoSuchKey mapped to %v", err)
	}
	err = handleMinIOError(errors.New("dial tcp: refused"), "connect")
	if !errors.As(err, &se) || se.Code != ErrCodeConnection {
		t.Errorf("transport error mapped to %v", err)
	}
}

const listResultXML = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
<Name>chatbot-line-images</Name><Prefix>line/line_U1/</Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>%s
</ListBucketResult>`

const accessDeniedXML = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>AccessDenied</Code><Message>Access Denied.</Message><Key>%s</Key><BucketName>chatbot-line-images</BucketName></Error>`

type fakeS3 struct {
	mu      sync.Mutex
	keys    []string
	deny    string
	deleted []string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const bucketPath = "/chatbot-line-images/"
	switch {
	case r.Method == http.MethodGet && r.URL.Query().Get("list-type") == "2":
		var contents strings.Builder
		for _, k := range f.keys {
			fmt.Fprintf(&contents, "<Contents><Key>%s</Key><LastModified>2026-03-01T00:00:00.000Z</LastModified><ETag>&quot;abc&quot;</ETag><Size>4</Size><StorageClass>STANDARD</StorageClass></Contents>", k)
		}
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprintf(w, listResultXML, len(f.keys), contents.String())
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, bucketPath):
		key := strings.TrimPrefix(r.URL.Path, bucketPath)
		if key == f.deny {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprintf(w, accessDeniedXML, key)
			return
		}
		f.mu.Lock()
		f.deleted = append(f.deleted, key)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func newTestMinIO(t *testing.T, h http.Handler) MinIO {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	m, err := NewMinIO(&config.MinIOConfig{
		Endpoint:  srv.Listener.Addr().String(),
		AccessKey: "minio",
		SecretKey: "minio-secret",
		Region:    "us-east-1",
		Bucket:    "chatbot-line-images",
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDeletePrefix(t *testing.T) {
	keys := []string{"line/line_U1/2026-03-01/m1.jpg", "line/line_U1/2026-03-02/m2.png"}

	t.Run("removes every listed object", func(t *testing.T) {
		s3 := &fakeS3{keys: keys}
		m := newTestMinIO(t, s3)

		n, err := m.DeletePrefix(context.Background(), "chatbot-line-images", "line/line_U1/")
		if err != nil {
			t.Fatalf("DeletePrefix() error = %v", err)
		}
		if n != 2 || len(s3.deleted) != 2 || s3.deleted[0] != keys[0] || s3.deleted[1] != keys[1] {
			t.Errorf("deleted %d: %v", n, s3.deleted)
		}
	})

	t.Run("stops at the first failed delete", func(t *testing.T) {
		s3 := &fakeS3{keys: keys, deny: keys[1]}
		m := newTestMinIO(t, s3)

		n, err := m.DeletePrefix(context.Background(), "chatbot-line-images", "line/line_U1/")
		var se *StorageError
		if !errors.As(err, &se) || se.Code != ErrCodePermission {
			t.Fatalf("DeletePrefix() error = %v, want permission error", err)
		}
		if n != 1 {
			t.Errorf("deleted = %d, want 1", n)
		}
	})

	t.Run("rejects an empty prefix", func(t *testing.T) {
		m := newTestMinIO(t, &fakeS3{})
		var se *StorageError
		if _, err := m.DeletePrefix(context.Background(), "chatbot-line-images", ""); !errors.As(err, &se) || se.Code != ErrCodeInvalidInput {
			t.Errorf("DeletePrefix() error = %v, want invalid input", err)
		}
	})
}
