package nowiki

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoBackupCreatedWhenOutputMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.json")

	backupPath, err := NewBackupManager(path).CreateBackup()
	require.NoError(t, err)
	assert.Empty(t, backupPath)
}

func TestBackupPreservesExistingOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"old":true}`), 0644))

	backupPath, err := NewBackupManager(path).CreateBackup()
	require.NoError(t, err)
	require.NotEmpty(t, backupPath)

	content, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, `{"old":true}`, string(content))

	// the original is untouched
	original, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"old":true}`, string(original))
}
