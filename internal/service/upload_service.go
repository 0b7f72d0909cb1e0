package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const MaxUploadSize = 5 * 1024 * 1024 // 5 MiB

var (
	ErrUnsupportedFileType = errors.New("only JPEG, PNG, GIF, and WebP images are allowed")
	ErrFileTooLarge        = errors.New("file size must be under 5MB")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService persists uploaded images to a public directory and hands back
// the URL they will be served under.
type UploadService struct {
	dir     string
	baseURL string
}

func NewUploadService(dir, baseURL string) *UploadService {
	return &UploadService{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Store validates the declared type and size, writes the file under a
// collision-resistant name, and returns its public URL.
func (s *UploadService) Store(filename, contentType string, size int64, r io.Reader) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", ErrUnsupportedFileType
	}
	if size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), randomSuffix(), ext)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, MaxUploadSize)); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

func randomSuffix() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
