package endpoint

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/tripplan/internal/errors"
)

// FileStore keeps the endpoint in a small YAML state file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore backed by path. The file and its directory
// are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the state file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements Store. A missing file is not an error.
func (f *FileStore) Load(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := f.read()
	if err != nil {
		return DefaultEndpoint, err
	}
	return orDefault(v.GetString(StorageKey)), nil
}

// Save implements Store. Other keys already present in the file are kept.
func (f *FileStore) Save(_ context.Context, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := f.read()
	if err != nil {
		return err
	}
	v.Set(StorageKey, Normalize(value))

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return errors.NewStoreError("create state directory", err).WithBackend("file")
	}
	if err := v.WriteConfigAs(f.path); err != nil {
		return errors.NewStoreError("write state file", err).WithBackend("file")
	}
	return nil
}

func (f *FileStore) read() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(f.path)
	v.SetConfigType("yaml")

	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return v, nil
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewStoreError("read state file", err).WithBackend("file")
	}
	return v, nil
}
