package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// headerExtensions are the file suffixes DiscoverHeaders treats as C++
// headers when walking a directory.
var headerExtensions = map[string]bool{
	".h":   true,
	".hpp": true,
	".hxx": true,
}

// DiscoverHeaders resolves target into a flat list of header files. A
// plain file is returned as-is, whether or not it matches a header
// extension, since a caller that names a file explicitly is trusted to
// know what it's doing. A directory is walked recursively, collecting
// header files whose base name doesn't match any of cfg.Ignore's glob
// patterns.
func DiscoverHeaders(target string, cfg *Config) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", target)
	}

	if !info.IsDir() {
		return []string{target}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isHeaderFile(path) {
			return nil
		}
		if cfg.ignoresFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", target)
	}
	return files, nil
}

func isHeaderFile(path string) bool {
	return headerExtensions[strings.ToLower(filepath.Ext(path))]
}

// ignoresFile reports whether path's base name matches any of cfg.Ignore's
// glob patterns.
func (c *Config) ignoresFile(path string) bool {
	name := filepath.Base(path)
	for _, pattern := range c.Ignore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
