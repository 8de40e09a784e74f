package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 5 << 20 // 5MB

var (
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrFileTooLarge    = errors.New("file exceeds the 5MB limit")
	ErrTooManyFiles    = errors.New("too many files")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Saver writes validated image uploads under Root and hands back the
// relative path to embed in a record.
type Saver struct {
	Root string
}

func NewSaver(root string) *Saver {
	return &Saver{Root: root}
}

// SaveImage validates and stores one multipart file under Root/subdir with a
// "<prefix>-<uuid><ext>" filename. The returned path is relative
// ("uploads/..."), which is how records reference uploaded files.
func (s *Saver) SaveImage(file *multipart.FileHeader, subdir, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", ErrUnsupportedType
	}
	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	dir := filepath.Join(s.Root, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return path.Join("uploads", subdir, name), nil
}

// SaveImages stores up to max files, failing the whole batch on the first
// invalid file.
func (s *Saver) SaveImages(files []*multipart.FileHeader, subdir, prefix string, max int) ([]string, error) {
	if len(files) > max {
		return nil, fmt.Errorf("%w: at most %d allowed", ErrTooManyFiles, max)
	}
	paths := make([]string, 0, len(files))
	for _, file := range files {
		p, err := s.SaveImage(file, subdir, prefix)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
