package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genicon [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Write src-tauri/app-icon.svg (default)")
	fmt.Fprintln(w, "  doctor     Check that the icon can be written")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'genicon help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags shared by generate and doctor.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -d, --base-dir <path>     Directory that contains src-tauri")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -v, --verbose             Show diagnostics on stderr")
}

// printEnvVars prints the recognized environment variables.
func printEnvVars(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GENICON_BASE_DIR          Same as --base-dir")
	fmt.Fprintln(w, "  GENICON_CONFIG            Same as --config")
	fmt.Fprintln(w, "  GENICON_QUIET             Same as --quiet (true/false)")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genicon [generate] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the placeholder icon to <base-dir>/src-tauri/app-icon.svg,")
	fmt.Fprintln(w, "creating src-tauri if needed and replacing any existing icon.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
	fmt.Fprintln(w, "  -q, --quiet               Do not print status lines")
	fmt.Fprintln(w)
	printEnvVars(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: genicon doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the target directory and the icon conversion tool without writing the icon.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
	fmt.Fprintln(w, "      --json                Print results as JSON")
	fmt.Fprintln(w)
	printEnvVars(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdGenerate:
		printGenerateUsage(env.Stdout)
	case cmdDoctor:
		printDoctorUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: genicon version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: genicon help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
