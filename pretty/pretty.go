// Package pretty is a cosmetic, ANSI-aware rendering of the same value
// model the reader produces, kept separate from it: it consumes a
// value.Value and never entangles with the reader, indenting one
// collection element per line the way a recursive pretty-printer
// always does.
package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/volsungdenichor/edn/value"
)

const indentWidth = 2

// ansi color codes, used only when color is enabled.
const (
	colorReset  = "\x1b[0m"
	colorNumber = "\x1b[36m"
	colorString = "\x1b[32m"
	colorSymbol = "\x1b[37m"
	colorKey    = "\x1b[35m"
	colorPunct  = "\x1b[90m"
)

// Options controls the renderer's behavior.
type Options struct {
	Color bool
}

// AutoOptions enables color only when w is a terminal.
func AutoOptions(w io.Writer) Options {
	if f, ok := w.(*os.File); ok {
		return Options{Color: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
	}
	return Options{Color: false}
}

// Fprint writes an indented, optionally colorized rendering of v to w.
func Fprint(w io.Writer, v value.Value, opts Options) {
	p := &printer{w: w, opts: opts}
	p.write(v, 0)
	fmt.Fprintln(w)
}

// Sprint renders v to a string using opts.
func Sprint(v value.Value, opts Options) string {
	var sb strings.Builder
	Fprint(&sb, v, opts)
	return strings.TrimRight(sb.String(), "\n")
}

type printer struct {
	w    io.Writer
	opts Options
}

func (p *printer) color(code, text string) string {
	if !p.opts.Color {
		return text
	}
	return code + text + colorReset
}

func (p *printer) tab(level int) string {
	return strings.Repeat(" ", level*indentWidth)
}

func (p *printer) write(v value.Value, level int) {
	switch v.Kind() {
	case value.KindVector:
		items, _ := v.AsVector()
		p.writeSeq(items, "[", "]", level)
	case value.KindList:
		items, _ := v.AsList()
		p.writeSeq(items, "(", ")", level)
	case value.KindSet:
		items, _ := v.AsSet()
		p.writeSeq(items, "#{", "}", level)
	case value.KindMap:
		entries, _ := v.AsMap()
		fmt.Fprintf(p.w, "%s%s\n", p.tab(level), p.color(colorPunct, "{"))
		for _, e := range entries {
			p.write(e.Key, level+1)
			fmt.Fprintln(p.w)
			p.write(e.Value, level+1)
			fmt.Fprintln(p.w)
		}
		fmt.Fprintf(p.w, "%s%s", p.tab(level), p.color(colorPunct, "}"))
	default:
		fmt.Fprintf(p.w, "%s%s", p.tab(level), p.colorFor(v))
	}
}

func (p *printer) writeSeq(items []value.Value, open, close string, level int) {
	fmt.Fprintf(p.w, "%s%s\n", p.tab(level), p.color(colorPunct, open))
	for _, it := range items {
		p.write(it, level+1)
		fmt.Fprintln(p.w)
	}
	fmt.Fprintf(p.w, "%s%s", p.tab(level), p.color(colorPunct, close))
}

func (p *printer) colorFor(v value.Value) string {
	text := value.Format(v, value.Readable)
	switch v.Kind() {
	case value.KindInt, value.KindFloat:
		return p.color(colorNumber, text)
	case value.KindString, value.KindChar:
		return p.color(colorString, text)
	case value.KindKeyword:
		return p.color(colorKey, text)
	case value.KindSymbol:
		return p.color(colorSymbol, text)
	default:
		return text
	}
}
