// Command edn is the CLI shim: it reads a file argument, evaluates it
// against a root scope preloaded with the builtin table, and prints
// the result, or falls back to an interactive REPL when no file is
// given. A file evaluation can be named and persisted to a SQLite
// store, and a previously saved name can be loaded back without
// re-evaluating anything.
package main

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/rs/zerolog"

	"github.com/volsungdenichor/edn/builtin"
	"github.com/volsungdenichor/edn/edncfg"
	"github.com/volsungdenichor/edn/eval"
	"github.com/volsungdenichor/edn/pretty"
	"github.com/volsungdenichor/edn/reader"
	"github.com/volsungdenichor/edn/repl"
	"github.com/volsungdenichor/edn/scope"
	"github.com/volsungdenichor/edn/store"
	"github.com/volsungdenichor/edn/value"
)

const usage = `edn

Usage:
  edn [<file>] [--no-color] [--history=<path>] [--store=<path>] [--save=<name>]
  edn --load=<name> --store=<path> [--no-color]
  edn -h | --help

Options:
  -h --help          Show this help.
  --no-color         Disable ANSI color in output.
  --history=<path>   Override the REPL history file location.
  --store=<path>     Path to a SQLite database used by --save/--load.
  --save=<name>      Persist the evaluated file's result under this name.
  --load=<name>      Print a previously --save'd value and exit, skipping evaluation.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := edncfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg.Color = cfg.Color && pretty.AutoOptions(os.Stdout).Color
	if noColor, _ := opts.Bool("--no-color"); noColor {
		cfg.Color = false
	}
	if hist, err := opts.String("--history"); err == nil && hist != "" {
		cfg.HistoryFile = hist
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	storePath, _ := opts.String("--store")
	loadName, _ := opts.String("--load")
	if loadName != "" {
		return runLoad(storePath, loadName, cfg)
	}

	root := builtin.Install(scope.New())

	file, err := opts.String("<file>")
	if err != nil || file == "" {
		r := repl.New(root, cfg, log)
		if err := r.Run(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:")
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	saveName, _ := opts.String("--save")
	return runFile(root, file, cfg, storePath, saveName)
}

func runFile(root *scope.Scope, path string, cfg edncfg.Config, storePath, saveName string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	form, err := reader.Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	result, err := eval.Eval(form, root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if saveName != "" {
		if storePath == "" {
			fmt.Fprintln(os.Stderr, "Error:")
			fmt.Fprintln(os.Stderr, "--save requires --store=<path>")
			return 1
		}
		if err := saveResult(storePath, saveName, result); err != nil {
			fmt.Fprintln(os.Stderr, "Error:")
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if cfg.Color {
		pretty.Fprint(os.Stdout, result, pretty.Options{Color: cfg.Color})
	} else {
		fmt.Println(value.Format(result, value.Readable))
	}
	return 0
}

func saveResult(storePath, name string, result value.Value) error {
	s, err := store.Open(storePath)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Save(name, result)
}

func runLoad(storePath, name string, cfg edncfg.Config) int {
	if storePath == "" {
		fmt.Fprintln(os.Stderr, "Error:")
		fmt.Fprintln(os.Stderr, "--load requires --store=<path>")
		return 1
	}
	s, err := store.Open(storePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	v, err := s.Load(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if cfg.Color {
		pretty.Fprint(os.Stdout, v, pretty.Options{Color: cfg.Color})
	} else {
		fmt.Println(value.Format(v, value.Readable))
	}
	return 0
}
