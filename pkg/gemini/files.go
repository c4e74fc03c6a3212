package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

// UploadFile uploads content with a multipart/related body: JSON metadata then the media part.
func (g *geminiImpl) UploadFile(ctx context.Context, content []byte, displayName, mimeType string) (File, error) {
	if mimeType == "" {
		mimeType = MimeTypeText
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	meta, err := json.Marshal(map[string]any{"file": map[string]string{"display_name": displayName}})
	if err != nil {
		return File{}, fmt.Errorf("gemini: marshal upload metadata: %w", err)
	}
	metaPart, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return File{}, fmt.Errorf("gemini: create metadata part: %w", err)
	}
	if _, err := metaPart.Write(meta); err != nil {
		return File{}, fmt.Errorf("gemini: write metadata part: %w", err)
	}
	mediaPart, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {mimeType}})
	if err != nil {
		return File{}, fmt.Errorf("gemini: create media part: %w", err)
	}
	if _, err := mediaPart.Write(content); err != nil {
		return File{}, fmt.Errorf("gemini: write media part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return File{}, fmt.Errorf("gemini: close multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s?key=%s", g.uploadURL, g.apiKey)
	body, status, err := g.httpClient.PostRaw(ctx, endpoint,
		"multipart/related; boundary="+mw.Boundary(), buf.Bytes(),
		map[string]string{"X-Goog-Upload-Protocol": "multipart"})
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if status != http.StatusOK {
		return File{}, newAPIError(status, body)
	}

	var resp uploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if resp.File.URI == "" {
		return File{}, fmt.Errorf("%w: upload response has no file uri", ErrDecode)
	}
	return resp.File, nil
}

// GetFile fetches file metadata. name is the resource name, e.g. "files/abc-123".
func (g *geminiImpl) GetFile(ctx context.Context, name string) (File, error) {
	body, status, err := g.httpClient.Get(ctx, g.fileURL(name), nil)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if status != http.StatusOK {
		return File{}, newAPIError(status, body)
	}
	var f File
	if err := json.Unmarshal(body, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return f, nil
}

// ListFiles walks every page of the project's uploaded files.
func (g *geminiImpl) ListFiles(ctx context.Context) ([]File, error) {
	var files []File
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("key", g.apiKey)
		q.Set("pageSize", "100")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		body, status, err := g.httpClient.Get(ctx, g.baseURL+"/files?"+q.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		if status != http.StatusOK {
			return nil, newAPIError(status, body)
		}
		var page listFilesResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		files = append(files, page.Files...)
		if page.NextPageToken == "" {
			return files, nil
		}
		pageToken = page.NextPageToken
	}
}

// DeleteFile removes a file. 200 and 204 are both success.
func (g *geminiImpl) DeleteFile(ctx context.Context, name string) error {
	body, status, err := g.httpClient.Delete(ctx, g.fileURL(name), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return newAPIError(status, body)
	}
	return nil
}

func (g *geminiImpl) fileURL(name string) string {
	if !strings.HasPrefix(name, "files/") {
		name = "files/" + name
	}
	return fmt.Sprintf("%s/%s?key=%s", g.baseURL, name, g.apiKey)
}
