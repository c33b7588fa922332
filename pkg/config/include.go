package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ParseIncludePath extracts the header path out of a raw "#include ..."
// directive, stripping the leading directive keyword and the surrounding
// "<...>" or "\"...\"" delimiters.
func ParseIncludePath(directive string) string {
	s := strings.TrimSpace(directive)
	s = strings.TrimPrefix(s, "#include")
	s = strings.TrimSpace(s)
	return strings.Trim(s, `"<>`)
}

// ResolveInclude searches c.IncludeDirs in order for path, returning the
// first match. It reports ok=false if path isn't found under any of them,
// which is expected for system headers: IncludeDirs only ever covers the
// project's own tree.
func (c *Config) ResolveInclude(path string) (resolved string, ok bool) {
	for _, dir := range c.IncludeDirs {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
