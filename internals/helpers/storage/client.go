// Package storage is the Supabase Storage client. One configured client is
// built at startup and injected into every service that touches binaries.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ObjectStore is the surface the entity services depend on; tests swap in a
// double.
type ObjectStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, path string) error
	DeleteByURL(ctx context.Context, publicURL string) error
}

type Client struct {
	projectURL string
	serviceKey string
	bucket     string
	http       *http.Client
}

func New(projectURL, serviceKey, bucket string) *Client {
	return &Client{
		projectURL: strings.TrimRight(projectURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload PUTs the object and returns its public URL.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.projectURL, c.bucket, escapePath(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "max-age=3600")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed status %d: %s", resp.StatusCode, string(body))
	}

	return c.PublicURL(path), nil
}

func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.projectURL, c.bucket, escapePath(path))
}

func (c *Client) Delete(ctx context.Context, path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.projectURL, c.bucket, escapePath(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteByURL removes the object a public URL points at.
func (c *Client) DeleteByURL(ctx context.Context, publicURL string) error {
	_, path, err := ExtractPath(publicURL)
	if err != nil {
		return err
	}
	return c.Delete(ctx, path)
}

// ExtractPath reverses PublicURL into (bucket, object path).
func ExtractPath(publicURL string) (bucket string, path string, err error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("not a public storage URL: %s", publicURL)
	}
	rest, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", "", err
	}
	bp := strings.SplitN(rest, "/", 2)
	if len(bp) < 2 {
		return "", "", fmt.Errorf("missing object path: %s", publicURL)
	}
	return bp[0], bp[1], nil
}

// escapePath escapes each segment but keeps the separators.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
