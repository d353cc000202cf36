package ports

import "go.trai.ch/webls/internal/core/domain"

// Parser extracts folder and file references from a directory-index
// document. Implementations are pure and never fail: malformed input
// degrades to empty results.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse returns the references the document links to, resolved
	// against baseURL. The first folder is always the synthetic ".."
	// parent entry.
	Parse(baseURL string, body []byte) ([]domain.FolderRef, []domain.FileRef)
}
