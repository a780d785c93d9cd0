package utils

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

var ErrOutsideDir = errors.New("path escapes image directory")

// ResolveImagePath joins name onto dir and rejects any result that escapes
// dir after cleaning, so "../" segments cannot reach other files.
func ResolveImagePath(dir, name string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	p := filepath.Join(absDir, name)
	cleaned := filepath.Clean(p)
	if cleaned != absDir && !strings.HasPrefix(cleaned, absDir+string(filepath.Separator)) {
		return "", ErrOutsideDir
	}
	return cleaned, nil
}

// StampedFilename prefixes the original name with a minute-resolution
// timestamp so repeated uploads of the same file do not collide.
func StampedFilename(original string, now time.Time) string {
	base := filepath.Base(original)
	return now.Format("200601021504") + "_" + base
}
