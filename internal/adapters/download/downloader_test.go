package download_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webls/internal/adapters/download"
	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/webls/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestDownloader_File(t *testing.T) {
	body := strings.Repeat("x", 20*1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "media")
	d := download.NewDownloader(quietLogger(t))

	var updates []int64
	var reportedTotal int64
	progress := func(_ domain.FileRef, done, total int64) {
		updates = append(updates, done)
		reportedTotal = total
	}

	file := domain.FileRef{Name: "clip.mp4", URL: srv.URL + "/clip.mp4"}
	require.NoError(t, d.File(context.Background(), file, dir, nil, progress))

	written, err := os.ReadFile(filepath.Join(dir, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, body, string(written))

	require.NotEmpty(t, updates)
	assert.Equal(t, int64(0), updates[0])
	assert.Equal(t, int64(len(body)), updates[len(updates)-1])
	assert.Equal(t, int64(len(body)), reportedTotal)
}

func TestDownloader_File_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "sam" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := download.NewDownloader(quietLogger(t))
	file := domain.FileRef{Name: "a.mp4", URL: srv.URL + "/a.mp4"}

	err := d.File(context.Background(), file, dir, nil, nil)
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)

	creds := &domain.Credentials{Username: "sam", Password: "secret"}
	require.NoError(t, d.File(context.Background(), file, dir, creds, nil))
}

func TestDownloader_File_HTTPErrorLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := download.NewDownloader(quietLogger(t))
	file := domain.FileRef{Name: "gone.mp4", URL: srv.URL + "/gone.mp4"}

	err := d.File(context.Background(), file, dir, nil, nil)

	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
	assert.NoFileExists(t, filepath.Join(dir, "gone.mp4"))
}

func TestDownloader_File_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	d := download.NewDownloader(quietLogger(t))
	file := domain.FileRef{Name: "a.mp4", URL: srv.URL + "/a.mp4"}

	err := d.File(context.Background(), file, t.TempDir(), nil, nil)

	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestDownloader_File_CreatesDestinationDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "nested", "deep")
	d := download.NewDownloader(quietLogger(t))
	file := domain.FileRef{Name: "a.mp4", URL: srv.URL + "/a.mp4"}

	require.NoError(t, d.File(context.Background(), file, dir, nil, nil))
	assert.FileExists(t, filepath.Join(dir, "a.mp4"))
}

func TestDownloader_All_SkipsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := download.NewDownloader(quietLogger(t))

	files := []domain.FileRef{
		{Name: "a.mp4", URL: srv.URL + "/a.mp4"},
		{Name: "broken.mp4", URL: srv.URL + "/broken.mp4"},
		{Name: "b.mkv", URL: srv.URL + "/b.mkv"},
	}

	got := d.All(context.Background(), files, dir, nil, nil)

	assert.Equal(t, 2, got)
	assert.FileExists(t, filepath.Join(dir, "a.mp4"))
	assert.NoFileExists(t, filepath.Join(dir, "broken.mp4"))
	assert.FileExists(t, filepath.Join(dir, "b.mkv"))
}

func TestDownloader_All_StopsOnCancelledContext(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := download.NewDownloader(quietLogger(t))
	files := []domain.FileRef{
		{Name: "a.mp4", URL: srv.URL + "/a.mp4"},
		{Name: "b.mp4", URL: srv.URL + "/b.mp4"},
	}

	got := d.All(ctx, files, t.TempDir(), nil, nil)

	assert.Zero(t, got)
	assert.Zero(t, requests)
}
