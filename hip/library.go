package hip

// This file locates the HIP runtime library in the system, the same way the dynamic linker would.

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// LibraryName is the file name of the HIP runtime library.
	LibraryName = "libamdhip64.so"

	// ROCmPathEnv is the environment variable with the ROCm installation directory.
	ROCmPathEnv = "ROCM_PATH"

	// DefaultROCmPath is where ROCm is installed if ROCmPathEnv is not set.
	DefaultROCmPath = "/opt/rocm"

	ldSoConf = "/etc/ld.so.conf"
)

var (
	reLdConfInclude = regexp.MustCompile(`^\s*include\s*(.*)$`)
	reLdConfComment = regexp.MustCompile(`^\s*#`)
	reLdConfPath    = regexp.MustCompile(`^\s*(.+?)\s*$`)
)

// libraryPaths is an ordered set of directories.
type libraryPaths struct {
	paths []string
	seen  map[string]bool
}

func (l *libraryPaths) add(dir string) {
	if dir == "" || !path.IsAbs(dir) {
		// No empty or relative paths.
		return
	}
	dir = path.Clean(dir)
	if l.seen == nil {
		l.seen = make(map[string]bool)
	}
	if l.seen[dir] {
		return
	}
	l.seen[dir] = true
	l.paths = append(l.paths, dir)
}

// LibrarySearchPaths returns the directories where the HIP runtime library is searched, in order:
// $ROCM_PATH/lib, the entries of LD_LIBRARY_PATH, the entries of /etc/ld.so.conf (and its includes)
// and finally /opt/rocm/lib.
func LibrarySearchPaths() []string {
	var l libraryPaths
	if rocmPath := os.Getenv(ROCmPathEnv); rocmPath != "" {
		l.add(path.Join(rocmPath, "lib"))
	}
	for _, ldPath := range strings.Split(os.Getenv("LD_LIBRARY_PATH"), ":") {
		l.add(ldPath)
	}
	loadLibraryPaths(ldSoConf, &l)
	l.add(path.Join(DefaultROCmPath, "lib"))
	if klog.V(2).Enabled() {
		klog.Infof("HIP library paths: %v", l.paths)
	}
	return l.paths
}

// loadLibraryPaths parses a ld.so.conf file, following its "include" directives.
func loadLibraryPaths(filePath string, l *libraryPaths) {
	klog.V(2).Infof("Loading paths for libraries from %q", filePath)
	file, err := os.Open(filePath)
	if err != nil {
		klog.V(1).Infof("Failed to load paths for libraries from %q: %v", filePath, err)
		return
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if parts := reLdConfInclude.FindStringSubmatch(line); len(parts) > 0 {
			pattern := parts[1]
			if !path.IsAbs(pattern) {
				pattern = filepath.Join(filepath.Dir(filePath), pattern)
			}
			files, err := filepath.Glob(pattern)
			if err != nil {
				klog.Errorf("Failed to load paths for libraries while expanding include entry %q: %v", parts[1], err)
				continue
			}
			for _, includeFile := range files {
				loadLibraryPaths(includeFile, l)
			}

		} else if reLdConfComment.MatchString(line) {
			continue

		} else if parts := reLdConfPath.FindStringSubmatch(line); len(parts) > 0 {
			l.add(parts[1])
		}
	}
	if err := scanner.Err(); err != nil {
		klog.Errorf("Error while loading paths for libraries from %q: %v", filePath, err)
	}
}

// FindLibrary returns the path to the first HIP runtime library found in LibrarySearchPaths.
func FindLibrary() (string, error) {
	return findLibrary(LibrarySearchPaths())
}

func findLibrary(dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := path.Join(dir, LibraryName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.Errorf("%s not found in any of [%s]", LibraryName, strings.Join(dirs, ", "))
}
