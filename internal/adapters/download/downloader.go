// Package download streams remote files from a directory index to the
// local filesystem.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/zerr"
)

// chunkSize is the copy buffer size. Progress is reported once per chunk.
const chunkSize = 8 * 1024

// Downloader implements ports.Downloader over HTTP.
type Downloader struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewDownloader creates an HTTP downloader. Downloads are bounded by the
// caller's context, not by a fixed timeout, so large files can finish.
func NewDownloader(logger ports.Logger) *Downloader {
	return &Downloader{
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// File downloads a single file into dir, creating dir if needed. The
// local name is the file's listing name.
func (d *Downloader) File(ctx context.Context, file domain.FileRef, dir string, creds *domain.Credentials, progress ports.DownloadProgress) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrDownloadFailed, err), "url", file.URL)
	}
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrDownloadFailed, err), "url", file.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return zerr.With(zerr.With(domain.ErrDownloadFailed, "status", strconv.Itoa(resp.StatusCode)), "url", file.URL)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrDownloadFailed, err), "dir", dir)
	}

	path := filepath.Join(dir, file.Name)
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrDownloadFailed, err), "path", path)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}
	if progress != nil {
		progress(file, 0, total)
	}

	if err := copyChunks(out, resp.Body, file, total, progress); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return zerr.With(errors.Join(domain.ErrDownloadFailed, err), "path", path)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(path)
		return zerr.With(errors.Join(domain.ErrDownloadFailed, err), "path", path)
	}
	return nil
}

// All downloads every file sequentially and returns the number that
// succeeded. Individual failures are logged and skipped; a cancelled
// context stops the run.
func (d *Downloader) All(ctx context.Context, files []domain.FileRef, dir string, creds *domain.Credentials, progress ports.DownloadProgress) int {
	succeeded := 0
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		if err := d.File(ctx, file, dir, creds, progress); err != nil {
			d.logger.Error(err)
			continue
		}
		succeeded++
	}
	d.logger.Info(fmt.Sprintf("downloaded %d/%d files to %s", succeeded, len(files), dir))
	return succeeded
}

// copyChunks copies body to out in fixed-size chunks, reporting progress
// after each one. A partial write surfaces as an error.
func copyChunks(out io.Writer, body io.Reader, file domain.FileRef, total int64, progress ports.DownloadProgress) error {
	buf := make([]byte, chunkSize)
	var done int64
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
			done += int64(n)
			if progress != nil {
				progress(file, done, total)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var _ ports.Downloader = (*Downloader)(nil)
