package cursorbuf

import (
	"github.com/performancecopilot/cursorbuf/fileio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Callback is invoked exactly once when a non blocking file operation
// finishes, err is nil on success
type Callback func(b *Buffer, err error)

// File returns the bound file, nil if there is none
func (b *Buffer) File() fileio.File { return b.file }

// SetFile binds an already open file, replacing the current one without
// closing it
func (b *Buffer) SetFile(f fileio.File) { b.file = f }

// OpenFile opens path with an fopen style mode ("r", "r+", "w", "a+", ...)
// and binds it. An empty mode uses DefaultFileMode. A previously bound file
// is closed first, unless mode is invalid, which fails with ErrInvalidInput
// and leaves it bound.
func (b *Buffer) OpenFile(path, mode string) error {
	if mode == "" {
		mode = defaultFileMode
	}

	if _, err := fileio.ParseMode(mode); err != nil {
		return errors.Wrapf(ErrInvalidInput, "file mode %q", mode)
	}

	if b.file != nil {
		if err := b.CloseFile(); err != nil {
			return err
		}
	}

	f, err := fileio.Open(path, mode)
	if err != nil {
		return ioError("open", path, err)
	}

	if logging {
		logger.Info("opened file",
			zap.String("module", "file"),
			zap.String("path", path),
			zap.String("mode", mode),
		)
	}

	b.file = f
	return nil
}

// CloseFile closes the bound file and unbinds it, even if closing fails
func (b *Buffer) CloseFile() error {
	f, err := b.requireFile()
	if err != nil {
		return err
	}

	b.file = nil
	return ioError("close", f.Name(), f.Close())
}

func (b *Buffer) requireFile() (fileio.File, error) {
	if b.file == nil {
		return nil, errors.WithStack(ErrNoFileHandle)
	}
	return b.file, nil
}

func (b *Buffer) async(op string, run func() error, done Callback) {
	go func() {
		err := run()
		if err != nil && logging {
			logger.Error("file operation failed",
				zap.String("module", "file"),
				zap.String("op", op),
				zap.Error(err),
			)
		}

		if done != nil {
			done(b, err)
		}
	}()
}

func (b *Buffer) readFrom(f fileio.File) error {
	data, err := fileio.ReadAll(f)
	if err != nil {
		return ioError("read", f.Name(), err)
	}

	b.setRegion(data, len(data))
	return nil
}

// FromFileSync replaces the region with the whole content of the bound file
// and moves the cursor to the end
func (b *Buffer) FromFileSync() error {
	f, err := b.requireFile()
	if err != nil {
		return err
	}

	return b.readFrom(f)
}

// FromFile is the non blocking form of FromFileSync. The buffer must not be
// used until done is called.
func (b *Buffer) FromFile(done Callback) error {
	f, err := b.requireFile()
	if err != nil {
		return err
	}

	b.async("read", func() error { return b.readFrom(f) }, done)
	return nil
}

// WriteToFileSync replaces the content of the bound file with the region
func (b *Buffer) WriteToFileSync() error {
	f, err := b.requireFile()
	if err != nil {
		return err
	}

	return ioError("write", f.Name(), fileio.WriteAll(f, b.Bytes()))
}

// WriteToFile is the non blocking form of WriteToFileSync
func (b *Buffer) WriteToFile(done Callback) error {
	f, err := b.requireFile()
	if err != nil {
		return err
	}

	data := b.Bytes()
	b.async("write", func() error {
		return ioError("write", f.Name(), fileio.WriteAll(f, data))
	}, done)
	return nil
}

// AppendToFileSync appends the region to the content of the bound file
func (b *Buffer) AppendToFileSync() error {
	f, err := b.requireFile()
	if err != nil {
		return err
	}

	return ioError("append", f.Name(), fileio.AppendAll(f, b.Bytes()))
}

// AppendToFile is the non blocking form of AppendToFileSync
func (b *Buffer) AppendToFile(done Callback) error {
	f, err := b.requireFile()
	if err != nil {
		return err
	}

	data := b.Bytes()
	b.async("append", func() error {
		return ioError("append", f.Name(), fileio.AppendAll(f, data))
	}, done)
	return nil
}

// CopyToFileSync writes the region to a newly created or truncated file at
// path, the bound file is not involved
func (b *Buffer) CopyToFileSync(path string) error {
	b.logCopy(path)
	return ioError("copy", path, fileio.WriteFile(path, b.Bytes()))
}

// CopyToFile is the non blocking form of CopyToFileSync
func (b *Buffer) CopyToFile(path string, done Callback) {
	b.logCopy(path)

	data := b.Bytes()
	b.async("copy", func() error {
		return ioError("copy", path, fileio.WriteFile(path, data))
	}, done)
}

func (b *Buffer) logCopy(path string) {
	if logging {
		logger.Info("copying buffer to file",
			zap.String("module", "file"),
			zap.String("path", path),
			zap.Int("length", b.Len()),
		)
	}
}
