package infra

// images.go — local-disk article image store. Files are named by a generated
// uuid plus the original extension; the uuid-based name is the imageRef kept
// on the article.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore reads and writes article images under a root directory.
type ImageStore struct {
	root string
}

func NewImageStore(root string) (*ImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("images: create storage dir: %w", err)
	}
	return &ImageStore{root: root}, nil
}

// Save stores the content of r and returns the generated image reference.
func (s *ImageStore) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", fmt.Errorf("images: extension %q non supportée", ext)
	}
	ref := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.root, ref))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return ref, nil
}

// Path resolves an image reference to its on-disk path. Rejects refs that
// would escape the storage root.
func (s *ImageStore) Path(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) {
		return "", fmt.Errorf("images: référence %q invalide", ref)
	}
	p := filepath.Join(s.root, ref)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *ImageStore) Delete(ref string) error {
	if ref == "" || ref != filepath.Base(ref) {
		return fmt.Errorf("images: référence %q invalide", ref)
	}
	err := os.Remove(filepath.Join(s.root, ref))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
