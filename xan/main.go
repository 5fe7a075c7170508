package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/xanalyzer/xanalyzer/cmd"
)

func main() {
	// Propose completions when invoked by the shell completion hook.
	cmd.Completion().Complete("xan")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	// An unknown subcommand may be provided by an external xan-<name> binary.
	if name := flag.Arg(0); name != "" && !registered(name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is one of the built-in subcommands.
func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
