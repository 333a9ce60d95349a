package client

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func uploadServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/upload-file/") {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		file, header, err := r.FormFile("picture")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		io.Copy(io.Discard, file) //nolint:errcheck
		if strings.HasPrefix(header.Filename, "slow") {
			time.Sleep(50 * time.Millisecond)
		}
		json.NewEncoder(w).Encode(UploadResult{ //nolint:errcheck
			Success:  true,
			Message:  "uploaded to " + strings.TrimPrefix(r.URL.Path, "/api/upload-file/"),
			FileName: header.Filename,
		})
	}))
}

func TestUploadFile(t *testing.T) {
	srv := uploadServer(t)
	defer srv.Close()

	path := writeFile(t, t.TempDir(), "still.png", pngBytes(t, 64, 32))
	progress := make(chan Progress, 256)

	res := New(srv.URL, "tok").UploadFile(context.Background(), path, UploadOptions{Folder: "media", Progress: progress})
	close(progress)

	if !res.Success {
		t.Fatalf("UploadFile() failed: %+v", res)
	}
	if res.FileName != "still.png" || res.Message != "uploaded to media" {
		t.Errorf("res = %+v", res)
	}

	last := -1
	for p := range progress {
		if p.Percent < last {
			t.Errorf("progress went backwards: %d after %d", p.Percent, last)
		}
		last = p.Percent
	}
	if last != 100 {
		t.Errorf("final progress = %d, want 100", last)
	}
}

func TestUploadFileStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	path := writeFile(t, t.TempDir(), "big.png", pngBytes(t, 4, 4))
	res := New(srv.URL, "tok").UploadFile(context.Background(), path, UploadOptions{Folder: "media"})
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Message != "Upload failed with status 413" || res.Error != "Request Entity Too Large" {
		t.Errorf("res = %+v", res)
	}
}

func TestUploadFileInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "ok") //nolint:errcheck
	}))
	defer srv.Close()

	path := writeFile(t, t.TempDir(), "a.png", pngBytes(t, 4, 4))
	res := New(srv.URL, "tok").UploadFile(context.Background(), path, UploadOptions{Folder: "media"})
	if res.Success || res.Message != "Invalid response from server" || res.Error != "Invalid JSON response" {
		t.Errorf("res = %+v", res)
	}
}

func TestUploadFileNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	path := writeFile(t, t.TempDir(), "a.png", pngBytes(t, 4, 4))
	res := New(base, "tok").UploadFile(context.Background(), path, UploadOptions{Folder: "media"})
	if res.Success || res.Message != "Network error during upload" {
		t.Errorf("res = %+v", res)
	}
}

func TestUploadFileMissing(t *testing.T) {
	res := New("http://127.0.0.1:1", "tok").UploadFile(context.Background(), filepath.Join(t.TempDir(), "nope.png"), UploadOptions{})
	if res.Success || res.Message != "Failed to prepare file for upload" {
		t.Errorf("res = %+v", res)
	}
}

func TestUploadFileRules(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", []byte("just some text"))
	rules := DefaultFileRules()
	res := New("http://127.0.0.1:1", "tok").UploadFile(context.Background(), path, UploadOptions{Rules: &rules})
	if res.Success || !strings.HasPrefix(res.Message, "File type not allowed") {
		t.Errorf("res = %+v", res)
	}
}

func TestUploadFilesKeepsOrder(t *testing.T) {
	srv := uploadServer(t)
	defer srv.Close()

	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "slow-1.png", pngBytes(t, 2, 2)),
		filepath.Join(dir, "missing.png"),
		writeFile(t, dir, "fast-3.png", pngBytes(t, 2, 2)),
	}
	c := New(srv.URL, "tok")

	for name, upload := range map[string]func(context.Context, []string, UploadOptions) []UploadResult{
		"sequential": c.UploadFiles,
		"parallel":   c.UploadFilesParallel,
	} {
		t.Run(name, func(t *testing.T) {
			results := upload(context.Background(), paths, UploadOptions{Folder: "portfolio"})
			if len(results) != 3 {
				t.Fatalf("len(results) = %d, want 3", len(results))
			}
			if results[0].FileName != "slow-1.png" || !results[0].Success {
				t.Errorf("results[0] = %+v", results[0])
			}
			if results[1].Success {
				t.Errorf("results[1] should fail for a missing file: %+v", results[1])
			}
			if results[2].FileName != "fast-3.png" || !results[2].Success {
				t.Errorf("results[2] = %+v", results[2])
			}
		})
	}
}

func TestUploadFilesParallelSharedProgress(t *testing.T) {
	srv := uploadServer(t)
	defer srv.Close()

	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.png", pngBytes(t, 8, 8)),
		writeFile(t, dir, "b.png", pngBytes(t, 8, 8)),
	}

	progress := make(chan Progress)
	seen := map[string]int{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for p := range progress {
			seen[p.File] = p.Percent
		}
	}()

	results := New(srv.URL, "tok").UploadFilesParallel(context.Background(), paths, UploadOptions{Folder: "media", Progress: progress, Concurrency: 2})
	close(progress)
	wg.Wait()

	for i, r := range results {
		if !r.Success {
			t.Errorf("results[%d] failed: %+v", i, r)
		}
	}
	if seen["a.png"] != 100 || seen["b.png"] != 100 {
		t.Errorf("final progress = %v, want 100 for both", seen)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	img := writeFile(t, dir, "a.png", pngBytes(t, 4, 4))
	text := writeFile(t, dir, "a.txt", []byte("hello"))

	if err := ValidateFile(img, DefaultFileRules()); err != nil {
		t.Errorf("ValidateFile(png) = %v, want nil", err)
	}

	err := ValidateFile(text, DefaultFileRules())
	want := "File type not allowed. Allowed types: image/jpeg, image/png, image/gif, video/mp4, video/webm"
	if err == nil || err.Error() != want {
		t.Errorf("ValidateFile(txt) = %v, want %q", err, want)
	}

	big := writeFile(t, dir, "big.bin", make([]byte, 1024*1024+1))
	err = ValidateFile(big, FileRules{MaxSize: 1024 * 1024})
	if err == nil || err.Error() != "File size must be less than 1MB" {
		t.Errorf("ValidateFile(oversize) = %v", err)
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{10 * 1024 * 1024, "10 MB"},
		{1288490189, "1.2 GB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.bytes); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestImageDimensions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "frame.png", pngBytes(t, 320, 180))
	w, h, err := ImageDimensions(path)
	if err != nil {
		t.Fatalf("ImageDimensions() error: %v", err)
	}
	if w != 320 || h != 180 {
		t.Errorf("dimensions = %dx%d, want 320x180", w, h)
	}
}

func TestDetectType(t *testing.T) {
	path := writeFile(t, t.TempDir(), "frame.png", pngBytes(t, 2, 2))
	typ, err := DetectType(path)
	if err != nil || typ != "image/png" {
		t.Errorf("DetectType() = %q, %v", typ, err)
	}
}
