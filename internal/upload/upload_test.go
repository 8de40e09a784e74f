package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	if contentType != "" {
		header["Content-Type"] = []string{contentType}
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaver_saveImage(t *testing.T) {
	saver := NewSaver(t.TempDir())

	file := fileHeader(t, "braai.JPG", "image/jpeg", []byte("jpeg-bytes"))
	stored, err := saver.SaveImage(file, "products", "product")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "uploads/products/product-"))
	assert.True(t, strings.HasSuffix(stored, ".jpg"))

	onDisk := filepath.Join(saver.Root, strings.TrimPrefix(stored, "uploads/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestSaver_rejectsUnsupportedExtension(t *testing.T) {
	saver := NewSaver(t.TempDir())

	file := fileHeader(t, "malware.exe", "image/png", []byte("x"))
	_, err := saver.SaveImage(file, "products", "product")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaver_rejectsNonImageContentType(t *testing.T) {
	saver := NewSaver(t.TempDir())

	file := fileHeader(t, "page.png", "text/html", []byte("<html>"))
	_, err := saver.SaveImage(file, "products", "product")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaver_rejectsOversizedFile(t *testing.T) {
	saver := NewSaver(t.TempDir())

	file := fileHeader(t, "big.png", "image/png", []byte("x"))
	file.Size = MaxFileSize + 1
	_, err := saver.SaveImage(file, "products", "product")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaver_saveImagesCapsBatch(t *testing.T) {
	saver := NewSaver(t.TempDir())

	files := []*multipart.FileHeader{
		fileHeader(t, "a.png", "image/png", []byte("a")),
		fileHeader(t, "b.png", "image/png", []byte("b")),
		fileHeader(t, "c.png", "image/png", []byte("c")),
	}
	_, err := saver.SaveImages(files, "travels", "travel", 2)
	assert.ErrorIs(t, err, ErrTooManyFiles)

	stored, err := saver.SaveImages(files[:2], "travels", "travel", 2)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
