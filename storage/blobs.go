package storage

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// Blobs stores opaque files by key.
type Blobs interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
	Delete(key string) error
}

// DataStore keeps blobs in the per-user application data directory.
type DataStore struct {
	m *gdata.Manager
}

// OpenDataStore opens the data directory of appName.
func OpenDataStore(appName string) (*DataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data store: %w", err)
	}
	return &DataStore{m: m}, nil
}

func (s *DataStore) Save(key string, data []byte) error {
	if err := s.m.SaveItem(key, data); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// Load returns ErrNotFound for keys that were never saved or were deleted.
func (s *DataStore) Load(key string) ([]byte, error) {
	data, err := s.m.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("storage: %s: %w", key, ErrNotFound)
	}
	return data, nil
}

// Delete empties the item; gdata treats an empty item as absent.
func (s *DataStore) Delete(key string) error {
	return s.Save(key, nil)
}
