package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename reduces a client-supplied filename to a name that is safe
// to join onto the upload directory: path components are stripped, spaces
// become underscores, and anything outside [A-Za-z0-9._-] is removed.
// Returns an empty string when nothing usable remains.
func SanitizeFilename(name string) string {
	// Normalize Windows-style separators before taking the base name
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")

	// Leading dots would allow hidden files or "." / ".." names
	name = strings.TrimLeft(name, ".")

	return name
}

// Save writes one uploaded file into dir under its sanitized name and returns
// that name. An existing file with the same name is overwritten. An empty
// returned name means the filename sanitized away to nothing and no file was
// written.
func Save(file *multipart.FileHeader, dir string) (string, error) {
	name := SanitizeFilename(file.Filename)
	if name == "" {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}
