package main

import (
	"fmt"

	"github.com/rbi-app/genicon"
	"github.com/rbi-app/genicon/internal/hints"
)

// runGenerate writes the placeholder icon and prints the status lines.
func runGenerate(args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}

	cfg, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}
	if flags.quiet {
		cfg.Quiet = true
	}

	baseDir, err := resolveBaseDir(cfg.BaseDir, env)
	if err != nil {
		return err
	}

	verbose := flags.common.verbose
	if verbose {
		fmt.Fprintf(env.Stderr, "Base directory: %s\n", baseDir)
	}

	start := env.Now()
	paths, err := genicon.Generate(baseDir)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForGenerate(err, genicon.ResolvePaths(baseDir).Dir))
	}

	if verbose {
		fmt.Fprintf(env.Stderr, "Wrote %d bytes in %s\n", len(genicon.SVGTemplate), env.Now().Sub(start))
	}

	if !cfg.Quiet {
		for _, line := range genicon.ReportLines(paths) {
			fmt.Fprintln(env.Stdout, line)
		}
	}

	return nil
}
