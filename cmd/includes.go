package cmd

import (
	"fmt"

	"cppgen/pkg/config"
	"cppgen/pkg/diag"
)

// reportInclude resolves a raw "#include ..." directive seen while parsing
// file against cfg.IncludeDirs, warning if the header can't be found under
// any of them. System headers such as <string> are not told apart from
// project headers, so they are warned about too. It's a no-op when no IncludeDirs are
// configured, so a project that never sets them sees no extra output.
func reportInclude(file string, cfg *config.Config, directive string) {
	if len(cfg.IncludeDirs) == 0 {
		return
	}
	path := config.ParseIncludePath(directive)
	if resolved, ok := cfg.ResolveInclude(path); ok {
		fmt.Printf("  #include %q -> %s\n", path, resolved)
		return
	}
	diag.Warnf("%s: #include %q not found under any configured includeDirs", file, path)
}
