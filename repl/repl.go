// Package repl is the interactive shim the CLI falls back to when no
// file argument is given: a liner-backed read-eval-print loop. It is
// ambient tooling, kept out of the core evaluator packages.
package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/volsungdenichor/edn/bridge"
	"github.com/volsungdenichor/edn/edncfg"
	"github.com/volsungdenichor/edn/eval"
	"github.com/volsungdenichor/edn/pretty"
	"github.com/volsungdenichor/edn/reader"
	"github.com/volsungdenichor/edn/scope"
	"github.com/volsungdenichor/edn/value"
)

// REPL is a liner-backed read-eval-print loop over a single root
// scope shared across lines, so `def`s made on one line are visible
// on the next.
type REPL struct {
	cfg    edncfg.Config
	root   *scope.Scope
	log    zerolog.Logger
	liner  *liner.State
	stdout io.Writer
}

// New builds a REPL evaluating against root, configured by cfg. It
// defines `read-line` in root so a running program can prompt the
// user mid-evaluation.
func New(root *scope.Scope, cfg edncfg.Config, log zerolog.Logger) *REPL {
	r := &REPL{cfg: cfg, root: root, log: log, stdout: os.Stdout}
	root.Define("read-line", bridge.AsValue("read-line", r.ReadLine))
	return r
}

// Run drives the loop until EOF (Ctrl-D) or a fatal line-editor error.
func (r *REPL) Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	r.liner = ln

	if f, err := os.Open(r.cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer r.saveHistory()

	for {
		line, err := ln.Prompt(r.cfg.Prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(r.stdout)
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		r.evalLine(line)
	}
}

func (r *REPL) evalLine(line string) {
	v, err := reader.Parse(line)
	if err != nil {
		r.log.Error().Err(err).Msg("parse error")
		return
	}
	result, err := eval.Eval(v, r.root)
	if err != nil {
		r.log.Error().Err(err).Msg("eval error")
		return
	}
	pretty.Fprint(r.stdout, result, pretty.Options{Color: r.cfg.Color})
}

func (r *REPL) saveHistory() {
	f, err := os.Create(r.cfg.HistoryFile)
	if err != nil {
		r.log.Warn().Err(err).Msg("could not persist history")
		return
	}
	defer f.Close()
	_, _ = r.liner.WriteHistory(f)
}

// ReadLine is installed as the `read-line` host callable: a native
// function that can call back into the terminal from inside a running
// program: host callables must be safe to call re-entrantly (a
// `map`/`filter` callback calls a user closure; this one calls back
// into I/O instead).
func (r *REPL) ReadLine(args []value.Value) (value.Value, error) {
	if r.liner == nil {
		return value.Nil, fmt.Errorf("read-line: no active REPL session")
	}
	prompt := ""
	if len(args) == 1 {
		prompt, _ = args[0].AsString()
	}
	line, err := r.liner.Prompt(prompt)
	if err != nil {
		return value.Nil, err
	}
	return value.String(line), nil
}
