package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencertify/gencertify/internal/core"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

func TestNewFilesystemRequiresRoot(t *testing.T) {
	_, err := NewFilesystem(Options{})
	require.Error(t, err)
}

func TestUploadAndDownloadURL(t *testing.T) {
	root := t.TempDir()
	store, err := NewFilesystem(Options{Root: root, BaseURL: "/files"})
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), core.UploadParams{
		OrganizationID: "org-1",
		FileName:       "info-sec-policy.txt",
		ContentType:    "text/plain",
		Content:        []byte("policy body"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/files/org-1/info-sec-policy.txt", url)

	data, err := os.ReadFile(filepath.Join(root, "org-1", "info-sec-policy.txt"))
	require.NoError(t, err)
	assert.Equal(t, "policy body", string(data))

	resolved, err := store.DownloadURL(context.Background(), "org-1", "info-sec-policy.txt")
	require.NoError(t, err)
	assert.Equal(t, url, resolved)
}

func TestUploadOverwritesExisting(t *testing.T) {
	store := MustNewFilesystem(Options{Root: t.TempDir()})

	ctx := context.Background()
	_, err := store.Upload(ctx, core.UploadParams{
		OrganizationID: "org-1", FileName: "doc.txt", Content: []byte("v1"),
	})
	require.NoError(t, err)
	_, err = store.Upload(ctx, core.UploadParams{
		OrganizationID: "org-1", FileName: "doc.txt", Content: []byte("v2"),
	})
	require.NoError(t, err)

	path, err := store.Open("org-1", "doc.txt")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestDownloadURLMissingFile(t *testing.T) {
	store := MustNewFilesystem(Options{Root: t.TempDir()})

	_, err := store.DownloadURL(context.Background(), "org-1", "nope.txt")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBlobPathRejectsTraversal(t *testing.T) {
	store := MustNewFilesystem(Options{Root: t.TempDir()})
	ctx := context.Background()

	tests := []struct {
		name  string
		orgID string
		file  string
	}{
		{"slash in file name", "org-1", "a/b.txt"},
		{"dotdot file", "org-1", ".."},
		{"slash in org", "a/b", "doc.txt"},
		{"empty org", "", "doc.txt"},
		{"empty file", "org-1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Upload(ctx, core.UploadParams{
				OrganizationID: tt.orgID, FileName: tt.file, Content: []byte("x"),
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}
