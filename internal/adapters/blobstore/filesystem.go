// Package blobstore stores generated document files. The filesystem adapter
// keeps blobs under a root directory, one subdirectory per organization, and
// serves them through the API's download URL space.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gencertify/gencertify/internal/core"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

const blobFileMode = 0o644

// Options configures the filesystem blob store.
type Options struct {
	// Root is the directory blobs are written under.
	Root string
	// BaseURL prefixes returned file URLs, e.g. "/files".
	BaseURL string
	Logger  *slog.Logger
}

// Filesystem is a BlobStore backed by the local filesystem.
type Filesystem struct {
	root    string
	baseURL string
	logger  *slog.Logger
}

var _ core.BlobStore = (*Filesystem)(nil)

// NewFilesystem constructs a filesystem blob store and creates the root
// directory if needed.
func NewFilesystem(opts Options) (*Filesystem, error) {
	root := strings.TrimSpace(opts.Root)
	if root == "" {
		return nil, errors.New("blobstore root directory is required")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blobstore root: %w", err)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = "/files"
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Filesystem{
		root:    root,
		baseURL: baseURL,
		logger:  logger.With("component", "blobstore"),
	}, nil
}

// MustNewFilesystem constructs a filesystem blob store or panics.
func MustNewFilesystem(opts Options) *Filesystem {
	store, err := NewFilesystem(opts)
	if err != nil {
		panic(err)
	}
	return store
}

// Upload writes the content under the organization's directory and returns
// the file URL. Existing files of the same name are overwritten.
func (s *Filesystem) Upload(_ context.Context, params core.UploadParams) (string, error) {
	path, err := s.blobPath(params.OrganizationID, params.FileName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "create organization blob dir")
	}
	if err := os.WriteFile(path, params.Content, blobFileMode); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "write blob")
	}

	s.logger.Debug("stored blob",
		"organization_id", params.OrganizationID,
		"file_name", params.FileName,
		"size_bytes", len(params.Content))

	return s.fileURL(params.OrganizationID, params.FileName), nil
}

// DownloadURL resolves the URL for a stored file, or a NotFound error when
// the blob does not exist.
func (s *Filesystem) DownloadURL(_ context.Context, organizationID, fileName string) (string, error) {
	path, err := s.blobPath(organizationID, fileName)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.NotFoundf("document file %s not found", fileName)
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "stat blob")
	}

	return s.fileURL(organizationID, fileName), nil
}

// Open returns the stored blob's absolute path for serving. Used by the
// download handler behind the file URL space.
func (s *Filesystem) Open(organizationID, fileName string) (string, error) {
	return s.blobPath(organizationID, fileName)
}

func (s *Filesystem) fileURL(organizationID, fileName string) string {
	return s.baseURL + "/" + organizationID + "/" + fileName
}

// blobPath confines blob access to root/orgID/fileName. Path separators or
// traversal in either component are rejected.
func (s *Filesystem) blobPath(organizationID, fileName string) (string, error) {
	if organizationID == "" || fileName == "" {
		return "", apperrors.Validation("organization id and file name are required")
	}
	if organizationID != filepath.Base(organizationID) || fileName != filepath.Base(fileName) {
		return "", apperrors.Validation("invalid blob path component")
	}
	if strings.HasPrefix(organizationID, ".") || strings.HasPrefix(fileName, "..") {
		return "", apperrors.Validation("invalid blob path component")
	}
	return filepath.Join(s.root, organizationID, fileName), nil
}
