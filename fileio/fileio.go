// Package fileio is the thin layer between a cursor buffer and the file
// system. It opens files with fopen style modes and reads, writes or
// appends whole regions through an open handle.
//
// Regular files are read through a read only memory mapping which is copied
// into a fresh slice and unmapped before returning, so callers always own
// what they get back.
package fileio

import (
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// DefaultMode is the mode used when none is given
const DefaultMode = "r+"

// File is an open handle, *os.File satisfies it
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	Name() string
	Stat() (os.FileInfo, error)
	Truncate(size int64) error
}

var modes = map[string]int{
	"r":   os.O_RDONLY,
	"rs":  os.O_RDONLY | os.O_SYNC,
	"r+":  os.O_RDWR,
	"rs+": os.O_RDWR | os.O_SYNC,
	"w":   os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	"wx":  os.O_WRONLY | os.O_CREATE | os.O_TRUNC | os.O_EXCL,
	"w+":  os.O_RDWR | os.O_CREATE | os.O_TRUNC,
	"wx+": os.O_RDWR | os.O_CREATE | os.O_TRUNC | os.O_EXCL,
	"a":   os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	"ax":  os.O_WRONLY | os.O_CREATE | os.O_APPEND | os.O_EXCL,
	"as":  os.O_WRONLY | os.O_CREATE | os.O_APPEND | os.O_SYNC,
	"a+":  os.O_RDWR | os.O_CREATE | os.O_APPEND,
	"ax+": os.O_RDWR | os.O_CREATE | os.O_APPEND | os.O_EXCL,
	"as+": os.O_RDWR | os.O_CREATE | os.O_APPEND | os.O_SYNC,
}

// ParseMode translates a mode string into os.OpenFile flags
func ParseMode(mode string) (int, error) {
	if mode == "" {
		mode = DefaultMode
	}

	flag, ok := modes[mode]
	if !ok {
		return 0, errors.Errorf("unknown file mode %q", mode)
	}

	return flag, nil
}

// Open opens path with the given mode, files are created with 0644
func Open(path, mode string) (*os.File, error) {
	flag, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	return os.OpenFile(path, flag, 0644)
}

// ReadAll returns the whole content of f regardless of its current offset
func ReadAll(f File) ([]byte, error) {
	if osf, ok := f.(*os.File); ok {
		fi, err := osf.Stat()
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() && fi.Size() > 0 {
			return readMapped(osf)
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return io.ReadAll(f)
}

func readMapped(f *os.File) ([]byte, error) {
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(m))
	copy(data, m)

	if err := m.Unmap(); err != nil {
		return nil, err
	}

	return data, nil
}

// WriteAll replaces the content of f with data
func WriteAll(f File, data []byte) error {
	if err := f.Truncate(0); err != nil {
		return err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	return writeFull(f, data)
}

// AppendAll writes data after the current content of f
func AppendAll(f File, data []byte) error {
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	return writeFull(f, data)
}

func writeFull(f File, data []byte) error {
	n, err := f.Write(data)
	if err != nil {
		return err
	}

	if n < len(data) {
		return io.ErrShortWrite
	}

	return nil
}

// WriteFile opens path in "w" mode, writes data and closes it again
func WriteFile(path string, data []byte) error {
	f, err := Open(path, "w")
	if err != nil {
		return err
	}

	if err := writeFull(f, data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
