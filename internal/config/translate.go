package config

import (
	"fmt"
	"strings"
)

// EngineFlag describes one flag of the underlying build system.
type EngineFlag struct {
	// Name is the flag name without the leading dash.
	Name string
	// HasValue reports whether the flag consumes an argument.
	HasValue bool
	// Usage is the engine's own description, carried for help output.
	Usage string
}

// engineFlags is the subset of build-system flag metadata the translation
// understands. Flags absent from this table are rejected rather than
// silently forwarded.
var engineFlags = []EngineFlag{
	{Name: "tags", HasValue: true, Usage: "build tags to consider satisfied"},
	{Name: "mod", HasValue: true, Usage: "module download mode"},
	{Name: "modfile", HasValue: true, Usage: "alternate go.mod file"},
	{Name: "overlay", HasValue: true, Usage: "file overlay JSON"},
	{Name: "trimpath", HasValue: false, Usage: "remove file system paths from output"},
	{Name: "buildvcs", HasValue: true, Usage: "whether to stamp VCS information"},
	{Name: "o", HasValue: true, Usage: "output file or directory"},
	{Name: "v", HasValue: false, Usage: "print package names as they are compiled"},
	{Name: "x", HasValue: false, Usage: "print the commands"},
	{Name: "work", HasValue: false, Usage: "keep the temporary work directory"},
	{Name: "race", HasValue: false, Usage: "enable data race detection"},
	{Name: "msan", HasValue: false, Usage: "enable memory sanitizer"},
	{Name: "asan", HasValue: false, Usage: "enable address sanitizer"},
	{Name: "cover", HasValue: false, Usage: "enable coverage analysis"},
	{Name: "covermode", HasValue: true, Usage: "coverage analysis mode"},
	{Name: "ldflags", HasValue: true, Usage: "arguments to pass to the linker"},
	{Name: "gcflags", HasValue: true, Usage: "arguments to pass to the compiler"},
}

// deniedEngineFlags are understood but never forwarded: they control the
// engine's own emission and instrumentation, not what gets documented.
var deniedEngineFlags = map[string]bool{
	"o":         true,
	"v":         true,
	"x":         true,
	"work":      true,
	"race":      true,
	"msan":      true,
	"asan":      true,
	"cover":     true,
	"covermode": true,
	"ldflags":   true,
	"gcflags":   true,
}

// TranslateBuildFlags validates raw engine flags against the metadata
// table and returns the forwardable subset in input order. Both spellings
// of a valued flag are accepted: "-tags=a" and "-tags", "a". Deny-listed
// flags are dropped (with their value) with a nil error; unknown flags are
// an error.
func TranslateBuildFlags(raw []string) ([]string, error) {
	known := make(map[string]EngineFlag, len(engineFlags))
	for _, f := range engineFlags {
		known[f.Name] = f
	}

	var out []string
	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		name := strings.TrimLeft(arg, "-")
		inline := strings.IndexByte(name, '=') >= 0
		if idx := strings.IndexByte(name, '='); idx >= 0 {
			name = name[:idx]
		}

		flag, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown build flag %q", arg)
		}

		// A valued flag written without "=" carries its value in the
		// next element; it travels (or is dropped) with the flag.
		var value string
		hasSeparateValue := flag.HasValue && !inline
		if hasSeparateValue {
			if i+1 >= len(raw) {
				return nil, fmt.Errorf("build flag %q missing value", arg)
			}
			i++
			value = raw[i]
		}

		if deniedEngineFlags[flag.Name] {
			continue
		}
		out = append(out, arg)
		if hasSeparateValue {
			out = append(out, value)
		}
	}

	return out, nil
}
