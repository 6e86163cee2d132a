package cmd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oavp/oavp-cli/internal/testutil"
)

func TestFileSystemOps_Defaults(t *testing.T) {
	fsOps := NewFileSystemOps()
	path := filepath.Join(t.TempDir(), "doc-export.md")

	require.NoError(t, fsOps.WriteFile(path, []byte("## Contents\r\n"), 0600))
	data, err := fsOps.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## Contents\r\n", string(data))
}

func TestFileSystemOps_Overrides(t *testing.T) {
	var written string
	fsOps := FileSystemOps{
		ReadFileFunc: func(string) ([]byte, error) {
			return nil, errors.New("denied")
		},
		WriteFileFunc: func(path string, _ []byte, _ fs.FileMode) error {
			written = path
			return nil
		},
	}

	_, err := fsOps.ReadFile("x")
	assert.EqualError(t, err, "denied")
	require.NoError(t, fsOps.WriteFile("out.md", nil, 0600))
	assert.Equal(t, "out.md", written)
}

func TestNewRootDeps(t *testing.T) {
	app := &App{Logger: testutil.NewTestLogger(t)}
	deps := NewRootDeps(app)

	assert.NotNil(t, deps.Clock)
	assert.NotNil(t, deps.FileSystem)
	assert.Same(t, app.Logger, deps.Logger)
}

func TestNewCommonDeps_NilLoggerDiscards(t *testing.T) {
	deps := NewCommonDeps(nil)

	require.NotNil(t, deps.Logger)
	assert.NotPanics(t, func() {
		deps.Logger.Debug("Parsed doc comments", "entries", 0)
	})
}
