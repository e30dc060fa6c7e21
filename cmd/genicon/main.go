package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches to a command and returns the process exit code.
// With no command, generate runs, matching the bare script invocation.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	cmd := cmdGenerate
	if len(args) > 0 && isCommand(args[0]) {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case cmdDoctor:
		return runDoctorCmd(args, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "genicon %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		runHelp(args, env)
		return ExitSuccess
	default:
		if err := runGenerate(args, env); err != nil {
			if isHelpRequest(err) {
				return ExitSuccess
			}
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}
}

// Command names.
const (
	cmdGenerate = "generate"
	cmdDoctor   = "doctor"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case cmdGenerate, cmdDoctor, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// wantsVerbose scans raw arguments for the verbose flag before parsing,
// so GOMAXPROCS logging can be enabled early.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
