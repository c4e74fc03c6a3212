package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, srv *httptest.Server) IGemini {
	t.Helper()
	g, err := New(GeminiConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		UploadURL: srv.URL + "/upload/files",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(GeminiConfig{}); !errors.Is(err, ErrAPIKeyRequired) {
		t.Errorf("New() error = %v, want ErrAPIKeyRequired", err)
	}
}

func TestGenerateContent(t *testing.T) {
	t.Run("decodes function call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/models/"+DefaultModel+":generateContent" {
				t.Errorf("path = %s", r.URL.Path)
			}
			if r.URL.Query().Get("key") != "test-key" {
				t.Errorf("key = %s", r.URL.Query().Get("key"))
			}
			var req Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if len(req.Tools) != 1 || req.Tools[0].FunctionDeclarations[0].Name != "search_products" {
				t.Errorf("tools not forwarded: %+v", req.Tools)
			}
			io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"functionCall":{"name":"search_products","args":{"criterias":["LED"]}}}]},"finishReason":"STOP"}],"usageMetadata":{"totalTokenCount":42}}`)
		}))
		defer srv.Close()

		g := newTestClient(t, srv)
		resp, err := g.GenerateContent(context.Background(), Request{
			Contents: []Content{{Role: RoleUser, Parts: []Part{{Text: "hi"}}}},
			Tools:    []Tool{{FunctionDeclarations: []FunctionDeclaration{{Name: "search_products"}}}},
		})
		if err != nil {
			t.Fatalf("GenerateContent() error = %v", err)
		}
		if resp.UsageMetadata.TotalTokenCount != 42 {
			t.Errorf("tokens = %d, want 42", resp.UsageMetadata.TotalTokenCount)
		}
		fc := resp.Candidates[0].Content.Parts[0].FunctionCall
		if fc == nil || fc.Name != "search_products" {
			t.Fatalf("function call = %+v", fc)
		}
	})

	t.Run("non-200 becomes APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			io.WriteString(w, `{"error":{"code":429,"message":"Resource exhausted","status":"RESOURCE_EXHAUSTED"}}`)
		}))
		defer srv.Close()

		_, err := newTestClient(t, srv).GenerateContent(context.Background(), Request{})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error = %v, want *APIError", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Message != "Resource exhausted" {
			t.Errorf("apiErr = %+v", apiErr)
		}
	})

	t.Run("unparseable error body keeps default message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `not json`)
		}))
		defer srv.Close()

		_, err := newTestClient(t, srv).GenerateContent(context.Background(), Request{})
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "Unknown error" {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		g := newTestClient(t, srv)
		srv.Close()

		_, err := g.GenerateContent(context.Background(), Request{})
		if !errors.Is(err, ErrTransport) {
			t.Errorf("error = %v, want ErrTransport", err)
		}
	})
}

func TestUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Goog-Upload-Protocol") != "multipart" {
			t.Errorf("missing upload protocol header")
		}
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/related" {
			t.Fatalf("content type = %q", r.Header.Get("Content-Type"))
		}
		mr := multipart.NewReader(r.Body, params["boundary"])

		meta, err := mr.NextPart()
		if err != nil {
			t.Fatalf("metadata part: %v", err)
		}
		var m struct {
			File struct {
				DisplayName string `json:"display_name"`
			} `json:"file"`
		}
		json.NewDecoder(meta).Decode(&m)
		if m.File.DisplayName != "Catalog" {
			t.Errorf("display_name = %q", m.File.DisplayName)
		}

		media, err := mr.NextPart()
		if err != nil {
			t.Fatalf("media part: %v", err)
		}
		data, _ := io.ReadAll(media)
		if string(data) != "catalog body" || media.Header.Get("Content-Type") != MimeTypeText {
			t.Errorf("media = %q (%s)", data, media.Header.Get("Content-Type"))
		}
		io.WriteString(w, `{"file":{"name":"files/abc","displayName":"Catalog","uri":"https://example/files/abc","mimeType":"text/plain"}}`)
	}))
	defer srv.Close()

	f, err := newTestClient(t, srv).UploadFile(context.Background(), []byte("catalog body"), "Catalog", "")
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
	if f.URI != "https://example/files/abc" || f.Name != "files/abc" {
		t.Errorf("file = %+v", f)
	}
}

func TestListAndDeleteFiles(t *testing.T) {
	deleted := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/files":
			if r.URL.Query().Get("pageToken") == "" {
				io.WriteString(w, `{"files":[{"name":"files/a"}],"nextPageToken":"p2"}`)
				return
			}
			io.WriteString(w, `{"files":[{"name":"files/b"}]}`)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/files/"):
			deleted = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	g := newTestClient(t, srv)
	files, err := g.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) != 2 || files[1].Name != "files/b" {
		t.Errorf("files = %+v", files)
	}

	if err := g.DeleteFile(context.Background(), "a"); err != nil {
		t.Fatalf("DeleteFile() error = %v", err)
	}
	if deleted != "/files/a" {
		t.Errorf("deleted path = %q", deleted)
	}
}
