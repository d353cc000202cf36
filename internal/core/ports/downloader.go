package ports

import (
	"context"

	"go.trai.ch/webls/internal/core/domain"
)

// DownloadProgress is invoked as a download advances. total is zero when
// the server does not report a content length.
type DownloadProgress func(file domain.FileRef, done, total int64)

// Downloader streams remote files to the local filesystem.
//
//go:generate mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type Downloader interface {
	// File downloads a single file into dir, creating dir if needed.
	File(ctx context.Context, file domain.FileRef, dir string, creds *domain.Credentials, progress DownloadProgress) error

	// All downloads every file sequentially and returns the number that
	// succeeded. Individual failures are logged and skipped.
	All(ctx context.Context, files []domain.FileRef, dir string, creds *domain.Credentials, progress DownloadProgress) int
}
