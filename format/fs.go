package format

import (
	"io"
	"os"
	"path/filepath"
)

// CreateFS is a file system that supports creating output files.
type CreateFS interface {
	// Create creates a new file for writing.
	Create(name string) (file File, err error)
}

// File is an output file. Its content replaces the named file on Close,
// and is discarded on Abort.
type File interface {
	io.WriteCloser
	// Abort discards the file. It does nothing after Close.
	Abort() (err error)
}

// DirFS creates output files relative to a directory. Absolute names are
// used as is.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) Create(name string) (file File, err error) {
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(string(dir), name)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}

	err = tmp.Chmod(0644)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return
	}

	file = &atomicFile{File: tmp, path: path}
	return
}

type atomicFile struct {
	*os.File
	path string
	done bool
}

func (af *atomicFile) Close() (err error) {
	if af.done {
		return os.ErrClosed
	}
	af.done = true

	err = af.File.Close()
	if err == nil {
		err = os.Rename(af.File.Name(), af.path)
	}
	if err != nil {
		os.Remove(af.File.Name())
	}

	return
}

func (af *atomicFile) Abort() (err error) {
	if af.done {
		return
	}
	af.done = true

	af.File.Close()
	return os.Remove(af.File.Name())
}
