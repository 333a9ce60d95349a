package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// UploadResult is the response of the upload endpoint. Failures are
// reported here as well; uploads never return an error.
type UploadResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FileName string `json:"fileName,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Progress is one upload progress event.
type Progress struct {
	File    string
	Percent int // 0-100
}

// UploadOptions configure an upload.
type UploadOptions struct {
	Folder string

	// Progress receives percentage events while the body is sent. The
	// caller must keep draining it until the upload returns.
	Progress chan<- Progress

	// Rules, when set, are checked before anything is sent.
	Rules *FileRules

	// Concurrency caps parallel uploads. Zero means no cap.
	Concurrency int
}

// UploadFile posts one file to {baseURL}/api/upload-file/{folder} as the
// multipart field "picture".
func (c *Client) UploadFile(ctx context.Context, path string, opts UploadOptions) UploadResult {
	if opts.Rules != nil {
		if err := ValidateFile(path, *opts.Rules); err != nil {
			return UploadResult{Message: err.Error(), Error: "Invalid file"}
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return UploadResult{Message: "Failed to prepare file for upload", Error: err.Error()}
	}
	defer f.Close() //nolint:errcheck // read-only

	return c.UploadReader(ctx, filepath.Base(path), f, opts)
}

// UploadReader uploads r under the given file name.
func (c *Client) UploadReader(ctx context.Context, name string, r io.Reader, opts UploadOptions) UploadResult {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("picture", name)
	if err == nil {
		_, err = io.Copy(part, r)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		return UploadResult{Message: "Failed to prepare file for upload", Error: err.Error()}
	}

	total := int64(body.Len())
	var reader io.Reader = &body
	if opts.Progress != nil {
		reader = &progressReader{r: &body, total: total, last: -1, report: func(pct int) {
			select {
			case opts.Progress <- Progress{File: name, Percent: pct}:
			case <-ctx.Done():
			}
		}}
	}

	endpoint := c.baseURL + "/api/upload-file/" + url.PathEscape(opts.Folder)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return UploadResult{Message: "Failed to prepare file for upload", Error: err.Error()}
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upload failed", "file", name, "folder", opts.Folder, "error", err)
		if errors.Is(err, context.Canceled) {
			return UploadResult{Message: "Upload was cancelled", Error: "Upload cancelled"}
		}
		return UploadResult{Message: "Network error during upload", Error: "Network error"}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("upload rejected", "file", name, "status", resp.StatusCode)
		return UploadResult{
			Message: fmt.Sprintf("Upload failed with status %d", resp.StatusCode),
			Error:   http.StatusText(resp.StatusCode),
		}
	}

	var out UploadResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return UploadResult{Message: "Invalid response from server", Error: "Invalid JSON response"}
	}
	c.logger.Debug("upload", "file", name, "folder", opts.Folder, "bytes", total, "duration", time.Since(start))
	return out
}

// UploadFiles uploads one file at a time. A failed file does not stop the
// rest; results are in input order.
func (c *Client) UploadFiles(ctx context.Context, paths []string, opts UploadOptions) []UploadResult {
	results := make([]UploadResult, 0, len(paths))
	for _, p := range paths {
		results = append(results, c.UploadFile(ctx, p, opts))
	}
	return results
}

// UploadFilesParallel uploads every file concurrently. Results are in input
// order regardless of completion order.
func (c *Client) UploadFilesParallel(ctx context.Context, paths []string, opts UploadOptions) []UploadResult {
	results := make([]UploadResult, len(paths))
	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			results[i] = c.UploadFile(ctx, p, opts)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never fail; failures live in results
	return results
}

// FileURL is where the API serves an uploaded file.
func (c *Client) FileURL(folder, fileName string) string {
	return c.baseURL + "/uploads/" + url.PathEscape(folder) + "/" + url.PathEscape(fileName)
}

type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.total > 0 {
		pct := int(p.read * 100 / p.total)
		if pct != p.last {
			p.last = pct
			p.report(pct)
		}
	}
	return n, err
}
