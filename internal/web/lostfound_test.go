package web

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campverse/campverse/internal/storage"
	"github.com/campverse/campverse/internal/store"
)

func setupTestServer(t *testing.T) (*httptest.Server, *storage.SQLite) {
	t.Helper()
	kv := storage.NewTestKV(t)

	ctx := context.Background()
	if err := store.Initialize(ctx, kv); err != nil {
		t.Fatalf("initializing collections: %v", err)
	}

	// Log in as the seeded student.
	user, err := store.FindUserByEmail(ctx, kv, "john@campverse.edu")
	if err != nil || user == nil {
		t.Fatalf("looking up seeded user: %v", err)
	}
	if err := store.SetCurrentUser(ctx, kv, user); err != nil {
		t.Fatalf("storing session: %v", err)
	}

	handler, err := NewRouter(kv)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server, kv
}

// noRedirectClient returns responses as-is instead of following redirects.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func multipartBody(t *testing.T, fields map[string]string, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	if imageName != "" {
		fw, err := mw.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("creating file field: %v", err)
		}
		if _, err := fw.Write(imageData); err != nil {
			t.Fatalf("writing file data: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestOversizedUploadRejected(t *testing.T) {
	server, kv := setupTestServer(t)
	client := noRedirectClient()
	ctx := context.Background()

	// Well past the body cap.
	big := bytes.Repeat([]byte{0xab}, 8<<20)

	for _, path := range []string{"/lostfound", "/marketplace"} {
		body, contentType := multipartBody(t, map[string]string{
			"title":    "Too big",
			"type":     "Lost",
			"location": "Library",
			"price":    "10",
		}, "big.jpg", big)

		resp, err := client.Post(server.URL+path, contentType, body)
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusRequestEntityTooLarge {
			t.Errorf("%s: expected 413 for an 8 MB body, got %d", path, resp.StatusCode)
		}
	}

	if items, _ := store.ListLostFound(ctx, kv); len(items) != 0 {
		t.Errorf("oversized upload created a lost & found item: %d", len(items))
	}
	if items, _ := store.ListMarketItems(ctx, kv); len(items) != 0 {
		t.Errorf("oversized upload created a market listing: %d", len(items))
	}
}

func TestLostFoundCreateWithImage(t *testing.T) {
	server, kv := setupTestServer(t)
	client := noRedirectClient()
	ctx := context.Background()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}

	body, contentType := multipartBody(t, map[string]string{
		"title":    "Blue backpack",
		"type":     "Lost",
		"location": "Library",
	}, "photo.png", pngBuf.Bytes())

	resp, err := client.Post(server.URL+"/lostfound", contentType, body)
	if err != nil {
		t.Fatalf("POST /lostfound: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}

	items, err := store.ListLostFound(ctx, kv)
	if err != nil {
		t.Fatalf("ListLostFound: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Blue backpack" {
		t.Errorf("expected form fields to survive the body cap, got title %q", items[0].Title)
	}
	if !strings.HasPrefix(items[0].ImageURL, "data:image/jpeg;base64,") {
		t.Errorf("expected a processed image data URI, got %.40q", items[0].ImageURL)
	}
}
