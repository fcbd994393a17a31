package pos

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Storage keys, kept identical to the original browser deployment so that
// exported blobs remain interchangeable with pre-existing data.
const (
	KeyProducts  = "sv_pos_products"
	KeyCustomers = "sv_pos_customers"
	KeySales     = "sv_pos_sales"
)

// Store is the keyed blob storage backing the persisted collections.
// Read returns fs.ErrNotExist when the key has never been written.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// DirStore persists each blob as a <key>.json file in a directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir. The directory is created on
// first write, not before.
func NewDirStore(dir string) DirStore { return DirStore{dir: dir} }

func (s DirStore) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s DirStore) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fs.ErrNotExist
		}
		return nil, fmt.Errorf("cannot read store file %q: %w", s.path(key), err)
	}
	return data, nil
}

func (s DirStore) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", s.dir, err)
	}
	filename := s.path(key)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("cannot write store file %q: %w", filename, err)
	}
	log.Printf("write-store-file name=%q bytes=%d", filename, len(data))
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore map[string][]byte

func (s MemStore) Read(key string) ([]byte, error) {
	data, ok := s[key]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (s MemStore) Write(key string, data []byte) error {
	s[key] = data
	return nil
}
