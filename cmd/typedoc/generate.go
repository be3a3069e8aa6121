package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SamuraiJack/typedoc/internal/analyze"
	"github.com/SamuraiJack/typedoc/internal/config"
	"github.com/SamuraiJack/typedoc/internal/convert"
	"github.com/SamuraiJack/typedoc/internal/output"
	"github.com/SamuraiJack/typedoc/internal/render"
)

var (
	flagDir               string
	flagName              string
	flagExclude           []string
	flagOutputDir         string
	flagFormats           []string
	flagIncludeUnexported bool
	flagSkipErrorChecking bool
	flagIncludeTests      bool
)

func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Generate the documentation graph for the matched packages",
		Long: `Generate loads the package patterns (default "./..."), converts every
declaration into the documentation graph, resolves cross-references, and
writes the configured output formats.

Blocking problems in the analyzed source abort the run and are printed by
category: the first non-empty category among option, syntax, global, and
semantic problems.`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerate,
	}

	generateCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "working directory for the load (env: TYPEDOC_DIR)")
	generateCmd.Flags().StringVar(&flagName, "name", "", "project name, defaults to the module path (env: TYPEDOC_NAME)")
	generateCmd.Flags().StringSliceVarP(&flagExclude, "exclude", "e", nil, "glob patterns for source files to skip")
	generateCmd.Flags().StringVarP(&flagOutputDir, "output", "o", "", "artifact directory, stdout when empty (env: TYPEDOC_OUTPUT_DIR)")
	generateCmd.Flags().StringSliceVarP(&flagFormats, "format", "f", nil, "output formats: json, yaml")
	generateCmd.Flags().BoolVar(&flagIncludeUnexported, "include-unexported", false, "also document unexported declarations")
	generateCmd.Flags().BoolVar(&flagSkipErrorChecking, "skip-error-checking", false, "convert even when the source has errors")
	generateCmd.Flags().BoolVar(&flagIncludeTests, "include-tests", false, "include test files of the matched packages")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	output.Debug("loading program",
		"patterns", cfg.Patterns,
		"dir", cfg.Dir,
		"tests", cfg.IncludeTests,
	)

	prog, err := analyze.Load(analyze.Config{
		Dir:        cfg.Dir,
		BuildFlags: cfg.Engine.BuildFlags,
		Env:        cfg.Engine.Env,
		Tests:      cfg.IncludeTests,
	}, cfg.Patterns...)
	if err != nil {
		return err
	}

	conv := convert.New(convert.Options{
		Name:              cfg.Name,
		Exclude:           cfg.Exclude,
		IncludeUnexported: cfg.IncludeUnexported,
		SkipErrorChecking: cfg.SkipErrorChecking,
	})

	diags, project := conv.Convert(prog)
	if len(diags) > 0 {
		output.PrintDiagnostics(os.Stderr, diags)
		return fmt.Errorf("conversion aborted: %d blocking problem(s)", len(diags))
	}

	output.Info("graph built",
		"project", cfg.Name,
		"reflections", project.Count(),
	)

	writer := &render.Writer{Dir: cfg.Output.Dir, Formats: cfg.Output.Formats}

	return writer.Write(cmd.Context(), project)
}

// loadConfig merges file, environment, and flag sources. Flags that were
// explicitly set win over everything else.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	loader := config.NewLoader()

	if len(args) > 0 {
		loader.Set("patterns", args)
	}
	setIfChanged(cmd, loader, "dir", "dir", flagDir)
	setIfChanged(cmd, loader, "name", "name", flagName)
	setIfChanged(cmd, loader, "exclude", "exclude", flagExclude)
	setIfChanged(cmd, loader, "output", "output.dir", flagOutputDir)
	setIfChanged(cmd, loader, "format", "output.formats", flagFormats)
	setIfChanged(cmd, loader, "include-unexported", "includeUnexported", flagIncludeUnexported)
	setIfChanged(cmd, loader, "skip-error-checking", "skipErrorChecking", flagSkipErrorChecking)
	setIfChanged(cmd, loader, "include-tests", "includeTests", flagIncludeTests)

	return loader.Load(configFile())
}

func setIfChanged(cmd *cobra.Command, loader *config.Loader, flag, key string, value any) {
	if cmd.Flags().Changed(flag) {
		loader.Set(key, value)
	}
}
