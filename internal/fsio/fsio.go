package fsio

import (
	"errors"
	"github.com/spf13/afero"
	"io/fs"
	"os"
)

type Reader interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (afero.File, error)
	ReadFile(name string) ([]byte, error)
}

type Writer interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
	Rename(oldName, newName string) error
	Remove(name string) error
}

type ReadWriter interface {
	Reader
	Writer
}

// Ensure FS implements ReadWriter interface
var _ ReadWriter = &FS{}

type FS struct {
	fs afero.Fs
}

func New(fs afero.Fs) *FS {
	return &FS{fs: fs}
}

func NewOS() *FS {
	return New(afero.NewOsFs())
}

func (f *FS) Stat(name string) (os.FileInfo, error) { return f.fs.Stat(name) }

func (f *FS) Open(name string) (afero.File, error) { return f.fs.Open(name) }

func (f *FS) ReadFile(name string) ([]byte, error) { return afero.ReadFile(f.fs, name) }

func (f *FS) MkdirAll(path string, perm os.FileMode) error { return f.fs.MkdirAll(path, perm) }

func (f *FS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(f.fs, name, data, perm)
}

func (f *FS) Rename(oldName, newName string) error { return f.fs.Rename(oldName, newName) }

func (f *FS) Remove(name string) error { return f.fs.Remove(name) }

// Exists reports whether name exists. Errors other than "not exist" are returned.
func Exists(r Reader, name string) (bool, error) {
	_, err := r.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func IsDir(r Reader, name string) (bool, error) {
	st, err := r.Stat(name)
	if err != nil {
		return false, err
	}
	return st.IsDir(), nil
}

func IsRegularFile(r Reader, name string) bool {
	st, err := r.Stat(name)
	if err != nil {
		return false
	}
	return st.Mode().IsRegular()
}
