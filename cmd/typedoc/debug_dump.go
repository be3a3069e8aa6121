//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/SamuraiJack/typedoc/internal/analyze"
	"github.com/SamuraiJack/typedoc/internal/convert"
)

// Scratch entry point for inspecting the raw graph of a small fixture
// package. Run directly: go run cmd/typedoc/debug_dump.go
func main() {
	prog, err := analyze.Load(analyze.Config{}, "github.com/SamuraiJack/typedoc/examples/shapes")
	if err != nil {
		fmt.Println("load:", err)
		os.Exit(1)
	}

	conv := convert.New(convert.Options{Name: "debug"})
	diags, project := conv.Convert(prog)
	if len(diags) > 0 {
		spew.Dump(diags)
		os.Exit(1)
	}

	for _, id := range project.IDs() {
		spew.Dump(project.ByID(id))
	}
}
