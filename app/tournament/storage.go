package tournament

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage gives access to tournament assets.
type Storage interface {
	GetStream(name string) (io.ReadCloser, error)
	Exists(name string) bool
	GetFullPath(name string) string
}

type DirStorage struct {
	Root string
}

func NewDirStorage(root string) *DirStorage {
	return &DirStorage{Root: root}
}

func (s *DirStorage) GetStream(name string) (io.ReadCloser, error) {
	file, err := os.Open(s.GetFullPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return file, nil
}

func (s *DirStorage) Exists(name string) bool {
	_, err := os.Stat(s.GetFullPath(name))
	return err == nil
}

func (s *DirStorage) GetFullPath(name string) string {
	return filepath.Join(s.Root, filepath.FromSlash(name))
}
