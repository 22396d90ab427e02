package integration

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrMissingRuntimeImage is returned by every preset when the compiled
// runtime is not available. Nothing is constructed in that case.
var ErrMissingRuntimeImage = errors.New("WASM not available")

// RuntimeSource supplies the compiled runtime image placed into genesis.
type RuntimeSource interface {
	RuntimeCode() ([]byte, error)
}

// StaticRuntime is a runtime image held in memory.
type StaticRuntime []byte

// RuntimeCode returns a copy of the image.
func (r StaticRuntime) RuntimeCode() ([]byte, error) {
	if len(r) == 0 {
		return nil, ErrMissingRuntimeImage
	}
	return append([]byte{}, r...), nil
}

// FileRuntime reads the runtime image from a file on first use and keeps the
// result, including a failure, for later calls.
type FileRuntime struct {
	Path string

	once sync.Once
	code []byte
	err  error
}

// NewFileRuntime returns a source reading the image at path.
func NewFileRuntime(path string) *FileRuntime {
	return &FileRuntime{Path: path}
}

// RuntimeCode returns a copy of the file contents.
func (r *FileRuntime) RuntimeCode() ([]byte, error) {
	r.once.Do(func() {
		if r.Path == "" {
			r.err = ErrMissingRuntimeImage
			return
		}
		code, err := os.ReadFile(r.Path)
		switch {
		case err != nil:
			r.err = fmt.Errorf("%w: %v", ErrMissingRuntimeImage, err)
		case len(code) == 0:
			r.err = fmt.Errorf("%w: %s is empty", ErrMissingRuntimeImage, r.Path)
		default:
			r.code = code
		}
	})
	if r.err != nil {
		return nil, r.err
	}
	return append([]byte{}, r.code...), nil
}

// loadRuntime fetches the image from src, treating a nil source as absent.
func loadRuntime(src RuntimeSource) ([]byte, error) {
	if src == nil {
		return nil, ErrMissingRuntimeImage
	}
	code, err := src.RuntimeCode()
	if err != nil {
		return nil, err
	}
	if len(code) == 0 {
		return nil, ErrMissingRuntimeImage
	}
	return code, nil
}
