package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	baseDir string
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common commonFlags
	quiet  bool
}

// doctorFlags holds all flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.baseDir, "base-dir", "d", "", "directory that contains src-tauri (default: working directory)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show diagnostics on stderr")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, usageOut io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet(cmdGenerate, flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &generateFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "do not print status lines")

	fs.Usage = func() { printGenerateUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags and returns positional args.
func parseDoctorFlags(args []string, usageOut io.Writer) (*doctorFlags, []string, error) {
	fs := flag.NewFlagSet(cmdDoctor, flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &doctorFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.json, "json", false, "print results as JSON")

	fs.Usage = func() { printDoctorUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// usageError tags flag parsing failures so they map to ExitUsage.
// A help request is passed through untouched.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return errors.Join(ErrUsage, err)
}

// isHelpRequest reports whether err came from -h/--help.
func isHelpRequest(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
