package good

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
)

const filePermissions = 0o644

var (
	// ErrSavingToFileFailed wraps any I/O error of SaveToFile.
	ErrSavingToFileFailed = errors.New("saving to file failed")

	// ErrLoadNotImplemented is returned by the Load placeholders.
	ErrLoadNotImplemented = errors.New("load is not implemented")
)

// PersistenceOption defines a functional option for configuring Persistence.
type PersistenceOption func(*persistenceConfig)

type persistenceConfig struct {
	logger Logger
}

// WithLogger sets the logger for Persistence.
// Info level receives successful writes, Debug level skipped writes, Error level failures.
func WithLogger(logger Logger) PersistenceOption {
	return func(c *persistenceConfig) {
		c.logger = logger
	}
}

// Persistence is responsible for storing values. It never touches their content beyond String().
type Persistence[T fmt.Stringer] struct {
	config persistenceConfig
}

// NewPersistence creates a Persistence for values of type T.
func NewPersistence[T fmt.Stringer](options ...PersistenceOption) *Persistence[T] {
	p := &Persistence[T]{}

	for _, option := range options {
		option(&p.config)
	}

	return p
}

// SaveToFile writes value.String() plus a newline to filename.
// The write happens only if overwrite is true or the file does not exist yet; otherwise it is a no-op.
// Errors are returned wrapped in ErrSavingToFileFailed and never retried.
// The content is rendered before the file is opened, so a failing String() leaves the file untouched.
func (p *Persistence[T]) SaveToFile(value T, filename string, overwrite bool) (err error) {
	line := value.String() + "\n"

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, openErr := os.OpenFile(filename, flags, filePermissions)
	if !overwrite && errors.Is(openErr, fs.ErrExist) {
		p.logDebug(logMsgWriteSkipped, logAttrFile, filename, logAttrOverwrite, overwrite)
		return nil
	}

	if openErr != nil {
		p.logError(logMsgWriteFailed, logAttrFile, filename, logAttrError, openErr.Error())
		return errors.Join(ErrSavingToFileFailed, openErr)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			p.logError(logMsgCloseFailed, logAttrFile, filename, logAttrError, closeErr.Error())

			if err == nil {
				err = errors.Join(ErrSavingToFileFailed, closeErr)
			}
		}
	}()

	n, writeErr := f.WriteString(line)
	if writeErr != nil {
		p.logError(logMsgWriteFailed, logAttrFile, filename, logAttrError, writeErr.Error())
		return errors.Join(ErrSavingToFileFailed, writeErr)
	}

	p.logInfo(logMsgFileWritten, logAttrFile, filename, logAttrBytesWritten, n)

	return nil
}

// Load is a placeholder; loading is outside the scope of this example.
func (p *Persistence[T]) Load(_ string) (T, error) {
	var zero T
	return zero, ErrLoadNotImplemented
}

// LoadFromURL is a placeholder; loading is outside the scope of this example.
func (p *Persistence[T]) LoadFromURL(_ *url.URL) (T, error) {
	var zero T
	return zero, ErrLoadNotImplemented
}

func (p *Persistence[T]) logInfo(msg string, args ...any) {
	if p.config.logger != nil {
		p.config.logger.Info(msg, args...)
	}
}

func (p *Persistence[T]) logDebug(msg string, args ...any) {
	if p.config.logger != nil {
		p.config.logger.Debug(msg, args...)
	}
}

func (p *Persistence[T]) logError(msg string, args ...any) {
	if p.config.logger != nil {
		p.config.logger.Error(msg, args...)
	}
}
