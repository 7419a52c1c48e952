package fsops

import (
	"os"
	"path/filepath"
)

// MemFS implements FS in memory. It is meant for tests.
type MemFS struct {
	files map[string][]byte
	dirs  map[string]bool

	// WriteErr, when set, is returned by every AtomicWrite
	WriteErr error

	// ReadErr, when set, is returned by every ReadFile
	ReadErr error
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// MkdirAll records path and its parents as directories.
func (m *MemFS) MkdirAll(path string, perm os.FileMode) error {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if p == filepath.Dir(p) {
			return nil
		}
	}
}

// Remove deletes a file.
func (m *MemFS) Remove(path string) error {
	path = filepath.Clean(path)
	if _, ok := m.files[path]; !ok {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	delete(m.files, path)
	return nil
}

// AtomicWrite stores a copy of data at path.
func (m *MemFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	path = filepath.Clean(path)
	_ = m.MkdirAll(filepath.Dir(path), 0755)
	m.files[path] = append([]byte(nil), data...)
	return nil
}

// ReadFile returns a copy of the data stored at path.
func (m *MemFS) ReadFile(path string) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// Exists reports whether a file or directory is recorded at path.
func (m *MemFS) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}
