package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// минимальный валидный PNG-заголовок
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestUpload_Success(t *testing.T) {
	var gotPreset, gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")

		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		gotFilename = header.Filename

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"http://cdn/img1.png"}`))
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "userimg")

	url, err := u.Upload(context.Background(), "photo.png", pngHeader)
	require.NoError(t, err)

	assert.Equal(t, "http://cdn/img1.png", url)
	assert.Equal(t, "userimg", gotPreset)
	assert.Equal(t, "photo.png", gotFilename)
}

func TestUpload_RejectsNonImage(t *testing.T) {
	u := NewUploader("http://unused", "userimg")

	_, err := u.Upload(context.Background(), "notes.txt", []byte("plain text, not an image"))
	require.ErrorIs(t, err, ErrNotAnImage)
}

func TestUpload_RejectsOversized(t *testing.T) {
	u := NewUploader("http://unused", "userimg")

	big := make([]byte, maxFileBytes+1)
	copy(big, pngHeader)

	_, err := u.Upload(context.Background(), "big.png", big)
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUpload_AcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"secure_url":"http://cdn/img1.png"}`))
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "userimg")

	url, err := u.Upload(context.Background(), "photo.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/img1.png", url)
}

func TestUpload_RedirectStatusIsUploadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "userimg")

	_, err := u.Upload(context.Background(), "photo.png", pngHeader)
	require.ErrorIs(t, err, ErrUploadFailed)
}

func TestUpload_ServerErrorIsUploadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "userimg")

	_, err := u.Upload(context.Background(), "photo.png", pngHeader)
	require.ErrorIs(t, err, ErrUploadFailed)
}

func TestUpload_EmptySecureURLIsUploadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	u := NewUploader(srv.URL, "userimg")

	_, err := u.Upload(context.Background(), "photo.png", pngHeader)
	require.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadAll_AbortsOnFirstFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			http.Error(w, "nope", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"secure_url":"http://cdn/ok.png"}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, pngHeader, 0o600))
		paths = append(paths, p)
	}

	u := NewUploader(srv.URL, "userimg")

	urls, err := u.UploadAll(context.Background(), paths)
	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Nil(t, urls)
	assert.Equal(t, 2, calls, "third file must not be attempted")
}

func TestUploadAll_AllSucceed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"secure_url":"http://cdn/ok.png"}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	p := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(p, pngHeader, 0o600))

	u := NewUploader(srv.URL, "userimg")

	urls, err := u.UploadAll(context.Background(), []string{p, p})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://cdn/ok.png", "http://cdn/ok.png"}, urls)
}
