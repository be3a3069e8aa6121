package diagnostic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SamuraiJack/typedoc/internal/common"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Category the diagnostic was classified under.
	Category Category
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Pos is the source position as "file:line:col", or empty when the
	// diagnostic has no position (e.g. option errors).
	Pos string
}

// File returns the file part of Pos, or empty for positionless diagnostics.
func (d Diagnostic) File() string {
	if d.Pos == "" {
		return ""
	}

	// Strip at most ":line:col" from the right; drive letters keep their colon.
	rest := d.Pos
	for range 2 {
		idx := strings.LastIndexByte(rest, ':')
		if idx <= 0 {
			break
		}
		if !isDigits(rest[idx+1:]) {
			break
		}
		rest = rest[:idx]
	}

	return rest
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Pos != "" {
		return d.Pos + ": " + msg
	}

	return msg
}

// Sort orders diagnostics by position (file, then numeric line and column),
// severity (descending), and code for stable, deterministic output.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		di, dj := diags[i], diags[j]
		if c := comparePos(di, dj); c != 0 {
			return c < 0
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}

		return di.Code < dj.Code
	})
}

// comparePos orders positions by file, then line, then column, comparing
// line and column numerically so line 2 sorts before line 10. Positionless
// diagnostics sort first.
func comparePos(a, b Diagnostic) int {
	af, al, ac := a.splitPos()
	bf, bl, bc := b.splitPos()
	if af != bf {
		return strings.Compare(af, bf)
	}
	if al != bl {
		return al - bl
	}

	return ac - bc
}

// splitPos breaks Pos into its file, line, and column parts; absent parts
// are zero. The numeric parts are digit-only by File's construction.
func (d Diagnostic) splitPos() (string, int, int) {
	file := d.File()
	rest := strings.TrimPrefix(d.Pos[len(file):], ":")
	if rest == "" {
		return file, 0, 0
	}

	var line, col int
	if lineStr, colStr, ok := strings.Cut(rest, ":"); ok {
		line, _ = strconv.Atoi(lineStr)
		col, _ = strconv.Atoi(colStr)
	} else {
		line, _ = strconv.Atoi(rest)
	}

	return file, line, col
}

// HasErrors returns true if any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	return common.ContainsFunc(diags, func(d Diagnostic) bool {
		return d.Severity >= SeverityError
	})
}
