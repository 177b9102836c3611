package mmap

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
)

var (
	// ErrClosed is returned by Bytes and Advise after Close.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrNotRegular is returned when the path is not a regular file.
	ErrNotRegular = errors.New("mmap: not a regular file")
	// ErrTooLarge is returned for files that do not fit the address space.
	ErrTooLarge = errors.New("mmap: file too large")
)

// Mapping is a read-only view of a whole input file.
// Empty files hold no OS resources.
type Mapping struct {
	mu     sync.RWMutex
	data   []byte
	unmap  func([]byte) error
	closed bool
}

// Open maps the regular file at path.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// The mapping outlives the descriptor.
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	switch n := fi.Size(); {
	case n == 0:
		return &Mapping{}, nil
	case n > math.MaxInt:
		return nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	default:
		data, unmap, err := osMap(f, int(n))
		if err != nil {
			return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
		}
		return &Mapping{data: data, unmap: unmap}, nil
	}
}

// Bytes returns the mapped contents. The slice must not be used after Close.
func (m *Mapping) Bytes() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}
	return m.data, nil
}

// Len returns the file size in bytes. It stays valid after Close.
func (m *Mapping) Len() int {
	return len(m.data)
}

// Advise hints how the contents will be read next.
func (m *Mapping) Advise(pattern AccessPattern) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// Close releases the mapping. Further calls are no-ops.
func (m *Mapping) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	if m.unmap == nil {
		return nil
	}
	return m.unmap(m.data)
}
