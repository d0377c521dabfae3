// Package media uploads images to the Snapfeed media endpoint. One attempt
// per file; a failed upload aborts the whole post-creation flow so a post is
// never created with a partial set of images.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// maxFileBytes bounds a single image upload.
const maxFileBytes = 10 << 20

var (
	ErrUploadFailed = errors.New("upload failed")
	ErrFileTooLarge = errors.New("file exceeds upload size limit")
	ErrNotAnImage   = errors.New("file is not an image")
)

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Uploader posts multipart image uploads and returns their public URLs.
type Uploader struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
}

func NewUploader(uploadURL, uploadPreset string) *Uploader {
	return &Uploader{
		uploadURL:    uploadURL,
		uploadPreset: uploadPreset,
		httpClient:   &http.Client{},
	}
}

// UploadFile reads a local file and uploads it. The file must be an image
// and fit the size limit.
func (u *Uploader) UploadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return u.Upload(ctx, filepath.Base(path), data)
}

// Upload validates and uploads a single image, returning its public URL.
func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {

	if len(data) > maxFileBytes {
		return "", ErrFileTooLarge
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, resp.Status)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("%w: empty secure_url", ErrUploadFailed)
	}

	return parsed.SecureURL, nil
}

// UploadAll uploads every file in order. It fails on the first error and
// returns no URLs, so the caller either gets the full set or aborts.
func (u *Uploader) UploadAll(ctx context.Context, paths []string) ([]string, error) {
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		url, err := u.UploadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
