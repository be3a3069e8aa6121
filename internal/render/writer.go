package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/SamuraiJack/typedoc/internal/model"
	"github.com/SamuraiJack/typedoc/internal/output"
)

// artifactBase is the file name stem for written artifacts.
const artifactBase = "typedoc"

// Writer materializes a project in one or more formats. With a Dir the
// formats are written concurrently as files; without one they stream to
// stdout in order.
type Writer struct {
	// Dir is the artifact directory, created if absent. Empty means stdout.
	Dir string

	// Formats lists the output formats to produce.
	Formats []string
}

// Write lowers the project once and emits every configured format.
func (w *Writer) Write(ctx context.Context, p *model.Project) error {
	doc := BuildDocument(p)

	if w.Dir == "" {
		for _, format := range w.Formats {
			enc, _, err := EncoderFor(format)
			if err != nil {
				return err
			}
			if err := enc(os.Stdout, doc); err != nil {
				return fmt.Errorf("writing %s to stdout: %w", format, err)
			}
		}

		return nil
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range w.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return w.writeFile(doc, format)
		})
	}

	return g.Wait()
}

func (w *Writer) writeFile(doc *Document, format string) error {
	enc, ext, err := EncoderFor(format)
	if err != nil {
		return err
	}

	path := filepath.Join(w.Dir, artifactBase+ext)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact: %w", err)
	}

	if err := enc(f, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	output.Debug("artifact written", "path", path, "format", format)

	return nil
}
