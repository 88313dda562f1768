package nowiki

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// BackupManager guards an output file against accidental overwrites by
// copying the existing file aside before a new expansion is written.
type BackupManager struct {
	path string
}

func NewBackupManager(path string) *BackupManager {
	return &BackupManager{path: path}
}

// CreateBackup copies the output file to a timestamped .bak sibling if it
// already exists. Returns the backup path, or "" when there was nothing to
// back up.
func (bm *BackupManager) CreateBackup() (backupPath string, err error) {
	if _, err := os.Stat(bm.path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("checking file existence: %w", err)
	}

	backupPath = fmt.Sprintf("%s.%s.bak", bm.path, time.Now().Format("20060102_150405"))

	if err := bm.copyFile(bm.path, backupPath); err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}

	slog.Info("output file already existed. Created a backup.", "backup", backupPath, "output", bm.path)
	return backupPath, nil
}

func (bm *BackupManager) copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
