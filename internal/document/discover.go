package document

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Discover returns the supported documents below roots.
// Roots may be files or folders, folders are walked recursively
// skipping hidden entries and office lock files (~$name.docx).
func (r Readers) Discover(roots []string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		if fileutil.FileExists(root) {
			if !r.Supports(root) {
				return nil, errorutil.NewWithTag("document", "unsupported document format %v", root)
			}
			paths = append(paths, root)
			continue
		}
		if !fileutil.FolderExists(root) {
			return nil, errorutil.NewWithTag("document", "%v does not exist", root)
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root && isHidden(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if isLockFile(d.Name()) || !r.Supports(path) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return sliceutil.Dedupe(paths), nil
}

// TotalSize returns the summed size of paths in bytes
func TotalSize(paths []string) int {
	total := 0
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil {
			total += int(info.Size())
		}
	}
	return total
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isLockFile(name string) bool {
	return strings.HasPrefix(name, "~$")
}
