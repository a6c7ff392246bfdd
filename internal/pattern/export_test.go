package pattern

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	st := Generate(smallOptions(), NewSource(8))
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "bg.svg")
	require.NoError(t, WriteFile(st, svgPath))
	got, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Equal(t, st.SVG(), got)

	uriPath := filepath.Join(dir, "bg.URI")
	require.NoError(t, WriteFile(st, uriPath))
	got, err = os.ReadFile(uriPath)
	require.NoError(t, err)
	assert.Equal(t, st.DataURI(), strings.TrimSpace(string(got)))

	pngPath := filepath.Join(dir, "bg.png")
	require.NoError(t, WriteFile(st, pngPath))
	got, err = os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(got[:4]))
}

func TestWriteFileRejectsUnknownType(t *testing.T) {
	st := Generate(smallOptions(), NewSource(8))
	path := filepath.Join(t.TempDir(), "bg.gif")
	assert.Error(t, WriteFile(st, path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
