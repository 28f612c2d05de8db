// Package diskv stores records as flat files under a base directory.
package diskv

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/brk3/weekly-habits/internal/storage"
	"github.com/peterbourgon/diskv/v3"
)

type Store struct {
	d *diskv.Diskv
}

func Open(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, fmt.Errorf("diskv: base path is required")
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	v, err := s.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *Store) Put(key string, val []byte) error {
	return s.d.Write(key, val)
}

// Close is a no-op; diskv holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}

var _ storage.Store = (*Store)(nil)
