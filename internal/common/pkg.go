package common

import "path"

// UnknownStr is the fallback name for unrecognized enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// QualifiedName joins a package path and a member name into "path.Name".
// A member of the empty package path is returned bare.
func QualifiedName(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return pkgPath + "." + name
}
