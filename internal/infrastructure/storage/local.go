package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore persists uploaded files on disk and returns their public URL.
// The upload contract is a single call taking a file and returning {file_url}.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, publicBaseURL string) (*LocalStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

// Save writes the file under a random name, keeping only the original
// extension, and returns the URL it will be served from.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file")
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := sanitizeExt(filepath.Ext(fh.Filename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + "/" + name, nil
}

// Dir is the directory static file serving should mount.
func (s *LocalStore) Dir() string {
	return s.dir
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
