package cursorbuf

import (
	"github.com/performancecopilot/cursorbuf/numeral"
	"github.com/pkg/errors"
)

// errors returned by Buffer operations, match them with errors.Is
var (
	ErrCapacityExceeded     = errors.New("not enough space available")
	ErrNoFileHandle         = errors.New("no file handle set")
	ErrInvalidInput         = errors.New("invalid input")
	ErrIndexOutOfBounds     = errors.New("index out of bounds")
	ErrNotFound             = errors.New("not found")
	ErrUnknownEncoding      = errors.New("unknown encoding")
	ErrInvalidNumeralFormat = numeral.ErrInvalidFormat
	ErrValueOutOfRange      = numeral.ErrOutOfRange
)

// IOError is returned when the file system fails an operation, Err is the
// error exactly as the file system returned it
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "cursorbuf: " + e.Op + ": " + e.Err.Error()
	}
	return "cursorbuf: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying file system error
func (e *IOError) Unwrap() error { return e.Err }

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
