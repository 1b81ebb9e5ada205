// Package storage persists rendered document bytes and hands back the
// opaque locator the document row records.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/orthoflow/orthoflow/internal/config"
	"github.com/orthoflow/orthoflow/internal/document/domain"
	"go.uber.org/zap"
)

type Store interface {
	// Put durably stores the bytes for one document version and
	// returns its file URL.
	Put(orderID int64, docType domain.Type, version int, data []byte) (string, error)
	// Open resolves a stored file URL back to a local path for serving.
	Open(fileURL string) (string, error)
}

type LocalStore struct {
	dir     string
	baseURL string
	log     *zap.Logger
}

func NewLocalStore(cfg config.Config, log *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:     cfg.UploadDir,
		baseURL: strings.TrimRight(cfg.UploadBaseURL, "/"),
		log:     log.Named("document.storage"),
	}, nil
}

func (s *LocalStore) Put(orderID int64, docType domain.Type, version int, data []byte) (string, error) {
	name := fmt.Sprintf("%s-%s-v%d.pdf", snowflake.ID(orderID).String(), strings.ToLower(string(docType)), version)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write document file: %w", err)
	}
	s.log.Debug("document stored", zap.String("file", name), zap.Int("bytes", len(data)))
	return s.baseURL + "/" + name, nil
}

func (s *LocalStore) Open(fileURL string) (string, error) {
	name := filepath.Base(fileURL)
	// Base strips any directory component, so a crafted URL cannot
	// escape the upload dir.
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrNotFound
	}
	return path, nil
}
