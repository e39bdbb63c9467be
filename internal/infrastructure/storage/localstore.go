package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"chefviral/internal/shared/errors"
)

const (
	minAssetSize        = 100 // rejects empty or corrupt files
	fileNameRandomBytes = 16
)

// allowedAssetMIMETypes maps content-detected MIME types to extensions.
// Detection runs on the uploaded bytes, never on the client-provided
// content type.
var allowedAssetMIMETypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// LocalStore persists tenant branding assets on the local filesystem
// under one directory per tenant and serves them from a public URL
// prefix.
type LocalStore struct {
	basePath  string
	publicURL string
	maxSize   int64
}

// NewLocalStore creates a LocalStore rooted at basePath. maxSizeMB caps
// individual uploads.
func NewLocalStore(basePath, publicURL string, maxSizeMB int) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory: %w", err)
	}
	return &LocalStore{
		basePath:  basePath,
		publicURL: publicURL,
		maxSize:   int64(maxSizeMB) << 20,
	}, nil
}

// SaveBrandingAsset stores an uploaded image for the tenant and returns
// its public URL. slot is "logo" or "banner".
func (s *LocalStore) SaveBrandingAsset(userSID, slot string, data []byte) (string, error) {
	if int64(len(data)) > s.maxSize {
		return "", errors.NewValidationError(fmt.Sprintf("arquivo excede o limite de %dMB", s.maxSize>>20))
	}
	if len(data) < minAssetSize {
		return "", errors.NewValidationError("arquivo vazio ou corrompido")
	}

	detected := mimetype.Detect(data)
	ext, ok := allowedAssetMIMETypes[detected.String()]
	if !ok {
		return "", errors.NewValidationError("formato de imagem não suportado", detected.String())
	}

	random := make([]byte, fileNameRandomBytes)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	name := slot + "_" + hex.EncodeToString(random) + ext

	dir := filepath.Join(s.basePath, userSID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create tenant directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write asset: %w", err)
	}

	return s.publicURL + "/" + userSID + "/" + name, nil
}

// BasePath returns the root directory assets are written under. The HTTP
// layer serves it statically at the public URL prefix.
func (s *LocalStore) BasePath() string {
	return s.basePath
}
