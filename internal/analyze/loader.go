package analyze

import (
	"fmt"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Config controls how a program is loaded.
type Config struct {
	// Dir is the working directory for the load, empty for the process cwd.
	Dir string
	// BuildFlags are passed through to the underlying build system.
	BuildFlags []string
	// Env overrides the build environment; nil inherits the process env.
	Env []string
	// Tests includes test files of the matched packages.
	Tests bool
}

// Load runs the analysis engine over the given package patterns and returns
// the resulting program. Engine-reported problems (parse errors, list errors,
// type errors) do not fail the load; they are carried on the program and
// classified later. Only a failure to run the engine at all is an error.
func Load(cfg Config, patterns ...string) (*Program, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode:       LoadMode,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
		Env:        cfg.Env,
		Tests:      cfg.Tests,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	return newProgram(pkgs), nil
}
