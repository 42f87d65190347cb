// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop interface.
//          It connects the user input stream to the compiler pipeline (Lexer->Parser->Evaluator)
//          and manages the persistent session state.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"eloquence/evaluator"
	"eloquence/lexer"
	"eloquence/object"
	"eloquence/parser"
	"eloquence/token"
)

// ----------------------------------------------------------------------------
// UI CONSTANTS & CONFIGURATION
// ----------------------------------------------------------------------------

const (
	PROMPT = ">> "
	LOGO   = `
┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
┃  ____                                              ┃
┃ |  _ \ _ __ ___  ___  ___                          ┃
┃ | |_) | '__/ _ \/ __|/ _ \                         ┃
┃ |  __/| | | (_) \__ \  __/                         ┃
┃ |_|   |_|  \___/|___/\___|                         ┃
┃                                                    ┃
┃ Prose — a language of nouns, verbs, and adjectives  ┃
┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
`
)

var (
	colorPrompt = color.New(color.FgCyan)
	colorNumber = color.New(color.FgYellow)
	colorNotion = map[bool]*color.Color{true: color.New(color.FgGreen), false: color.New(color.FgRed)}
	colorText   = color.New(color.FgGreen)
	colorNoun   = color.New(color.FgBlue)
	colorVerb   = color.New(color.FgMagenta)
	colorSkip   = color.New(color.FgHiBlack)
	colorError  = color.New(color.FgRed, color.Bold)
	colorInfo   = color.New(color.FgHiBlack)
)

// ----------------------------------------------------------------------------
// REPL LOGIC
// ----------------------------------------------------------------------------

// Start launches the Read-Eval-Print Loop.
// It listens to 'in', evaluates code, and writes results to 'out'.
// The 'env' persists across the session to allow variable storage.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()
	object.RegisterBuiltins(env)
	debugMode := false

	fmt.Fprint(out, LOGO)
	printHelp(out)

	for {
		colorPrompt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// --- COMMAND HANDLING ---
		if strings.HasPrefix(line, ".") {
			switch line {
			case ".exit":
				colorInfo.Fprintln(out, "Goodbye!")
				return
			case ".clear":
				env = object.NewEnvironment()
				object.RegisterBuiltins(env)
				colorInfo.Fprintln(out, "Environment cleared (memory reset).")
				continue
			case ".debug":
				debugMode = !debugMode
				status := "DISABLED"
				if debugMode {
					status = "ENABLED"
				}
				colorInfo.Fprintf(out, "Debug mode %s\n", status)
				continue
			case ".help":
				printHelp(out)
				continue
			default:
				colorError.Fprintf(out, "Unknown command: %s. Type .help for info.\n", line)
				continue
			}
		}

		if debugMode {
			printTokens(out, line)
		}

		l := lexer.New(line)
		p := parser.New(l)
		program := p.ParseProgram()

		if len(p.Errors()) != 0 {
			printParserErrors(out, p.Errors())
			continue
		}

		if debugMode {
			printAST(out, program)
		}

		evaluated, err := evaluator.Eval(program, env)
		if err != nil {
			colorError.Fprintf(out, "ERROR: %s\n", err)
			continue
		}
		printEvalResult(out, evaluated)
	}
}

// ----------------------------------------------------------------------------
// HELPER FUNCTIONS
// ----------------------------------------------------------------------------

func printHelp(out io.Writer) {
	colorInfo.Fprintln(out, "Commands:")
	colorInfo.Fprintln(out, "  .exit   Quit the REPL")
	colorInfo.Fprintln(out, "  .clear  Reset memory")
	colorInfo.Fprintln(out, "  .debug  Toggle verbose AST/Token output")
	colorInfo.Fprintln(out, "  .help   Show this message")
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, line string) {
	colorInfo.Fprintln(out, "┌── [ TOKENS ] ──────────────────────────────────────────┐")
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintf(out, "│ %-15s : %s\n", tok.Type, tok.Lexeme)
	}
	colorInfo.Fprintln(out, "└────────────────────────────────────────────────────────┘")
}

func printAST(out io.Writer, program fmt.Stringer) {
	colorInfo.Fprintln(out, "┌── [ AST TREE ] ────────────────────────────────────────┐")
	if str := program.String(); str != "" {
		fmt.Fprintf(out, "%s\n", str)
	}
	colorInfo.Fprintln(out, "└────────────────────────────────────────────────────────┘")
}

func printParserErrors(out io.Writer, errors []string) {
	colorError.Fprintln(out, "Whoops! Parser Errors:")
	for _, msg := range errors {
		colorError.Fprintf(out, "  ✖ %s\n", msg)
	}
}

// printEvalResult formats the output based on the runtime value's kind, mirroring
// the teacher's per-type color dispatch but against this evaluator's Evaluation set.
func printEvalResult(out io.Writer, v object.Evaluation) {
	if v == nil {
		return
	}

	switch val := v.(type) {
	case object.VoidEvaluation:
		return
	case object.NumberEvaluation:
		colorNumber.Fprintln(out, val.String())
	case object.NotionEvaluation:
		colorNotion[val.Value].Fprintln(out, val.String())
	case object.TextEvaluation:
		colorText.Fprintln(out, val.String())
	case object.NounEvaluation:
		colorNoun.Fprintln(out, val.String())
	case object.ActionEvaluation, object.AdjectiveEvaluation:
		colorVerb.Fprintln(out, val.String())
	case object.SkipEvaluation:
		colorSkip.Fprintf(out, "skip(%s)\n", val.String())
	case object.ConclusionEvaluation:
		printEvalResult(out, val.Inner)
	default:
		fmt.Fprintln(out, v.String())
	}
}
