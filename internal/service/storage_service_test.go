package service

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"sysdesign_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStorage(t *testing.T) (*StorageService, string) {
	t.Helper()
	dir := t.TempDir()
	return &StorageService{Provider: &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}}, dir
}

func TestSaveSnapshotDataURL(t *testing.T) {
	svc, dir := newLocalStorage(t)

	payload := []byte{0x89, 'P', 'N', 'G'}
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	url, err := svc.SaveSnapshot(context.Background(), encoded)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/snapshots/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	written, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestSaveSnapshotBareBase64(t *testing.T) {
	svc, _ := newLocalStorage(t)

	url, err := svc.SaveSnapshot(context.Background(), base64.StdEncoding.EncodeToString([]byte("png-bytes")))
	require.NoError(t, err)
	assert.Contains(t, url, "snapshots/")
}

func TestSaveSnapshotInvalid(t *testing.T) {
	svc, _ := newLocalStorage(t)

	_, err := svc.SaveSnapshot(context.Background(), "")
	assert.Error(t, err)

	_, err = svc.SaveSnapshot(context.Background(), "not&&base64!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode snapshot")
}

func TestNewStorageServiceDefaultsToLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	svc := NewStorageService(cfg)
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}
