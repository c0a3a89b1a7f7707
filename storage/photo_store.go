// Package storage persists check-in captures on local disk and hands back
// the opaque reference stored on the attendance record.
package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("invalid image payload")

type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &PhotoStore{dir: dir}, nil
}

// DecodeDataURL strips an optional "data:image/...;base64," prefix and
// decodes the payload the camera widget sends.
func DecodeDataURL(s string) ([]byte, error) {
	if i := strings.Index(s, ","); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(raw) == 0 {
		return nil, ErrInvalidImage
	}
	return raw, nil
}

// Save writes the capture under a random name and returns its public path.
func (p *PhotoStore) Save(image []byte) (string, error) {
	name := fmt.Sprintf("%s.jpg", uuid.NewString())
	if err := os.WriteFile(filepath.Join(p.dir, name), image, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
