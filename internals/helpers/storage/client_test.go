package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadBuildsRequestAndReturnsPublicURL(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotAuth   string
		gotCT     string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "service-key", "images")
	url, err := c.Upload(context.Background(), "slides/cover.jpg", "image/jpeg", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotPath != "/storage/v1/object/images/slides/cover.jpg" {
		t.Errorf("path = %s", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("auth = %s", gotAuth)
	}
	if gotCT != "image/jpeg" {
		t.Errorf("content-type = %s", gotCT)
	}
	if string(gotBody) != "jpegdata" {
		t.Errorf("body = %q", gotBody)
	}
	want := srv.URL + "/storage/v1/object/public/images/slides/cover.jpg"
	if url != want {
		t.Errorf("public url = %s, want %s", url, want)
	}
}

func TestUploadSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bucket not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "key", "missing")
	if _, err := c.Upload(context.Background(), "a.jpg", "image/jpeg", []byte("x")); err == nil {
		t.Fatal("expected error on 404 response")
	}
}

func TestDeleteByURL(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "key", "images")
	url := c.PublicURL("albums/photo one.jpg")
	if err := c.DeleteByURL(context.Background(), url); err != nil {
		t.Fatalf("DeleteByURL: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", gotMethod)
	}
	if gotPath != "/storage/v1/object/images/albums/photo one.jpg" {
		t.Errorf("path = %s", gotPath)
	}
}

func TestExtractPath(t *testing.T) {
	bucket, path, err := ExtractPath("https://proj.supabase.co/storage/v1/object/public/images/slides/a.jpg")
	if err != nil {
		t.Fatalf("ExtractPath: %v", err)
	}
	if bucket != "images" || path != "slides/a.jpg" {
		t.Fatalf("got %q %q", bucket, path)
	}

	if _, _, err := ExtractPath("https://example.com/not/storage"); err == nil {
		t.Fatal("expected error for non-storage URL")
	}
}

type flakyStore struct {
	deleted []string
	failOn  string
}

func (f *flakyStore) Upload(ctx context.Context, path, ct string, data []byte) (string, error) {
	return "https://x/storage/v1/object/public/b/" + path, nil
}
func (f *flakyStore) Delete(ctx context.Context, path string) error { return nil }
func (f *flakyStore) DeleteByURL(ctx context.Context, url string) error {
	if url == f.failOn {
		return errors.New("storage unavailable")
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func TestCleanupURLsCollectsFailures(t *testing.T) {
	store := &flakyStore{failOn: "https://x/b"}
	res := CleanupURLs(context.Background(), store, []string{"https://x/a", "https://x/b", "", "https://x/c"})

	if res.Attempted != 3 {
		t.Fatalf("attempted = %d, want 3 (empty URL skipped)", res.Attempted)
	}
	if res.OK() {
		t.Fatal("expected a recorded failure")
	}
	fails := res.Failed()
	if len(fails) != 1 || fails[0].URL != "https://x/b" {
		t.Fatalf("failures = %+v", fails)
	}
	if len(store.deleted) != 2 {
		t.Fatalf("deleted = %v", store.deleted)
	}
}
