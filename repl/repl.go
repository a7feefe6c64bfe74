/*
File    : quill/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive driver: it reads lines, buffers
them until the literal command "run", then submits the buffer to the
parser and evaluator and prints the result. This is the out-of-scope
"interactive driver" collaborator, wired here to the core strictly
through its four operations — Lex, Parse, NewEnvironment, Eval.
*/
package repl

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"quill/eval"
	"quill/lexer"
	"quill/object"
	"quill/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `   ____        _ _ _
  / __ \      (_) | |
 | |  | |_   _ _| | |
 | |  | | | | | | | |
 | |__| | |_| | | | |
  \___\_\\__,_|_|_|_|`

// Repl holds the cosmetic configuration for a session — the prompt text
// and whether ANSI color output is enabled.
type Repl struct {
	Prompt  string
	NoColor bool
	Version string
	Line    string
}

// New creates a Repl with the given prompt. Colors are enabled by
// default; set NoColor on the returned value to disable them.
func New(prompt string) *Repl {
	return &Repl{
		Prompt:  prompt,
		Version: "0.1.0",
		Line:    strings.Repeat("-", 48),
	}
}

func (r *Repl) printBanner(writer io.Writer) {
	if r.NoColor {
		color.NoColor = true
	}

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintf(writer, "quill %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type lines of code, then \"run\" on its own line to evaluate the buffer.")
	cyanColor.Fprintln(writer, `Type "exit" to quit.`)
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the driver loop until "exit" or EOF. One object.Environment
// is created for the whole session and reused across every "run", so
// bindings accumulate the way a single long-lived program's would.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	env := object.NewEnvironment()
	var buffer bytes.Buffer

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		trimmed := strings.TrimSpace(line)

		switch trimmed {
		case "":
			continue
		case "exit":
			writer.Write([]byte("Good bye!\n"))
			return
		case "run":
			rl.SaveHistory(trimmed)
			r.runBuffer(writer, buffer.String(), env)
			buffer.Reset()
			continue
		}

		rl.SaveHistory(line)
		buffer.WriteString(line)
		buffer.WriteString("\n")
	}
}

// runBuffer parses and evaluates the accumulated source text, printing
// "Resultado: <inspect>" on success or one "  - <error>" line per parse
// error collected by the parser.
func (r *Repl) runBuffer(writer io.Writer, source string, env *object.Environment) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "  - %s\n", e)
		}
		return
	}

	var diag bytes.Buffer
	eval.SetDiagnostics(&diag)
	result := eval.Eval(program, env)
	eval.SetDiagnostics(os.Stderr)

	if diag.Len() > 0 {
		redColor.Fprint(writer, diag.String())
	}

	yellowColor.Fprintf(writer, "Resultado: %s\n", result.Inspect())
}
