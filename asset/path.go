package asset

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the bundled logo looked up in the working directory when
// no valid logo file is configured.
const DefaultFileName = "logo.png"

// Extension is the only accepted logo file extension.
const Extension = ".png"

// DefaultPath returns DefaultFileName resolved against the working directory.
// Falls back to the bare file name if the working directory is unavailable.
func DefaultPath() string {
	wd, err := os.Getwd()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(wd, DefaultFileName)
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// HasPNGExtension reports whether path ends in the accepted extension.
// The comparison is case-sensitive.
func HasPNGExtension(path string) bool {
	return filepath.Ext(path) == Extension
}
