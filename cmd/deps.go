package cmd

import (
	"io/fs"
	"os"

	"github.com/benbjohnson/clock"

	"github.com/oavp/oavp-cli/internal/log"
)

// FileSystem defines the interface for file system operations.
type FileSystem interface {
	ReadFile(string) ([]byte, error)
	WriteFile(string, []byte, fs.FileMode) error
}

// FileSystemOps provides file system operations for dependency injection.
type FileSystemOps struct {
	ReadFileFunc  func(string) ([]byte, error)
	WriteFileFunc func(string, []byte, fs.FileMode) error
}

// ReadFile returns the contents of the file at path.
func (f *FileSystemOps) ReadFile(path string) ([]byte, error) {
	if f.ReadFileFunc != nil {
		return f.ReadFileFunc(path)
	}
	return os.ReadFile(path) //nolint:gosec // path is chosen by the operator
}

// WriteFile writes data to the given path with specified permissions.
func (f *FileSystemOps) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if f.WriteFileFunc != nil {
		return f.WriteFileFunc(path, data, perm)
	}
	return os.WriteFile(path, data, perm)
}

// Ensure FileSystemOps implements FileSystem.
var _ FileSystem = (*FileSystemOps)(nil)

// NewFileSystemOps returns production file system operations.
func NewFileSystemOps() FileSystemOps {
	// Return empty struct - methods will use OS functions as defaults
	return FileSystemOps{}
}

// CommonDeps provides dependencies common across commands.
type CommonDeps struct {
	Clock      clock.Clock
	FileSystem FileSystem
	Logger     log.Logger
}

// NewCommonDeps creates production common dependencies. A nil logger
// discards all output.
func NewCommonDeps(logger log.Logger) CommonDeps {
	if logger == nil {
		logger = log.Nop()
	}
	fs := NewFileSystemOps()
	return CommonDeps{
		Clock:      clock.New(),
		FileSystem: &fs,
		Logger:     logger,
	}
}

// NewRootDeps creates common root dependencies for all commands.
func NewRootDeps(app *App) CommonDeps {
	return NewCommonDeps(app.Logger)
}
