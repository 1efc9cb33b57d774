package specfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-uvspec/lineshape"
)

// WriteFile renders c into path. The table is written to a temporary file in
// the same directory and renamed over path, so path is either left untouched
// or holds the complete table.
func WriteFile(path string, c *lineshape.Curve, opts Options) error {
	if c == nil {
		return errNilCurve
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("specfile: create %s: %w", path, err)
	}

	if err := Write(tmp, c, opts); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("specfile: write %s: %w", path, err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("specfile: sync %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("specfile: close %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("specfile: rename %s: %w", path, err)
	}

	return nil
}
