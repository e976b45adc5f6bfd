package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "photo.jpg", "photo.jpg"},
		{"spaces become underscores", "my product photo.jpg", "my_product_photo.jpg"},
		{"unix path stripped", "../../etc/passwd", "passwd"},
		{"nested path stripped", "/var/www/uploads/pic.png", "pic.png"},
		{"windows path stripped", `C:\Users\evil\shell.png`, "shell.png"},
		{"unsafe characters removed", "pr!ce l*st (final).pdf", "prce_lst_final.pdf"},
		{"leading dots removed", "..hidden.png", "hidden.png"},
		{"dot dot only", "..", ""},
		{"empty input", "", ""},
		{"only unsafe characters", "???###", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeFilename(tc.in)
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, "\\")
		})
	}
}

// fileHeader builds a real multipart.FileHeader the way a request parser would
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestSave(t *testing.T) {
	t.Run("writes file under sanitized name", func(t *testing.T) {
		dir := t.TempDir()
		fh := fileHeader(t, "../escape attempt.png", []byte("png-bytes"))

		name, err := Save(fh, dir)
		require.NoError(t, err)
		assert.Equal(t, "escape_attempt.png", name)

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("creates the upload directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		fh := fileHeader(t, "a.jpg", []byte("x"))

		name, err := Save(fh, dir)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, name))
	})

	t.Run("collision overwrites existing file", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Save(fileHeader(t, "same.jpg", []byte("first")), dir)
		require.NoError(t, err)
		_, err = Save(fileHeader(t, "same.jpg", []byte("second")), dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "same.jpg"))
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("name sanitizing to nothing writes no file", func(t *testing.T) {
		dir := t.TempDir()
		fh := fileHeader(t, "..", []byte("x"))

		name, err := Save(fh, dir)
		require.NoError(t, err)
		assert.Empty(t, name)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
