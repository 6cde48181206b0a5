package hip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadLibraryPaths(t *testing.T) {
	dir := t.TempDir()
	confDir := filepath.Join(dir, "ld.so.conf.d")
	require.NoError(t, os.Mkdir(confDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ld.so.conf"),
		[]byte("# Main file\n/usr/local/lib\ninclude ld.so.conf.d/*.conf\n\nrelative/lib\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "rocm.conf"),
		[]byte("  /opt/rocm-6.3.1/lib  \n/usr/local/lib\n"), 0o644))

	var l libraryPaths
	loadLibraryPaths(filepath.Join(dir, "ld.so.conf"), &l)
	require.Equal(t, []string{"/usr/local/lib", "/opt/rocm-6.3.1/lib"}, l.paths)

	// Missing files are ignored.
	loadLibraryPaths(filepath.Join(dir, "missing.conf"), &l)
	require.Len(t, l.paths, 2)
}

func TestLibrarySearchPaths(t *testing.T) {
	t.Setenv(ROCmPathEnv, "/custom/rocm")
	t.Setenv("LD_LIBRARY_PATH", "/a/lib::relative:/custom/rocm/lib/")
	paths := LibrarySearchPaths()
	require.GreaterOrEqual(t, len(paths), 3)
	require.Equal(t, []string{"/custom/rocm/lib", "/a/lib"}, paths[:2])
	require.Contains(t, paths, "/opt/rocm/lib")
}

func TestFindLibrary(t *testing.T) {
	dir := t.TempDir()
	_, err := findLibrary([]string{dir})
	require.ErrorContains(t, err, LibraryName)

	libPath := filepath.Join(dir, LibraryName)
	require.NoError(t, os.WriteFile(libPath, nil, 0o644))
	found, err := findLibrary([]string{"/nonexistent", dir})
	require.NoError(t, err)
	require.Equal(t, libPath, found)
}
