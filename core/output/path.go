// Package output — unique path resolution.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultExt is used by UniquePath when no extension is given.
const DefaultExt = ".md"

// UniquePath returns a path in dir that does not exist at call time:
// base.ext, then base-2.ext, base-3.ext, and so on.
//
// The check and the later write are not atomic. Callers must be the only
// writer into dir; pagesnap processes URLs strictly one at a time.
func UniquePath(dir, base, ext string) string {
	if ext == "" {
		ext = DefaultExt
	}
	p := filepath.Join(dir, base+ext)
	if !exists(p) {
		return p
	}
	for i := 2; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, i, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
