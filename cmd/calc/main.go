/*
Calc reads arithmetic expressions and prints their evaluated result.

It is one of the two example front ends built on the ictiobus package,
implementing the Calc-1/2/3 and Error-1 scenarios from the library's
specification: addition, subtraction, multiplication and division with
the usual precedence and left associativity, and parenthesized
subexpressions.

Usage:

	calc [flags] [FILE]

The flags are:

	-i, --interactive
		Read expressions one at a time from a readline-backed prompt
		instead of a file, evaluating and printing each as it is entered.

	-d, --direct
		Force reading directly from stdin instead of going through
		readline, even when connected to a TTY. Only meaningful with -i.

	--dump-table
		Print the constructed SLR(1) action/goto table and exit without
		parsing anything.

With no FILE and without -i, expressions are read from stdin.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/ictiobus"
	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/internal/input"
	"github.com/dekarrin/ictiobus/internal/version"
	"github.com/dekarrin/ictiobus/lex"
	"github.com/spf13/pflag"
)

const (
	ExitSuccess = iota
	ExitLexError
	ExitGrammarError
	ExitParseError
	ExitInitError
)

var (
	returnCode      = ExitSuccess
	flagInteractive = pflag.BoolP("interactive", "i", false, "Read expressions from an interactive prompt")
	flagDirect      = pflag.BoolP("direct", "d", false, "Force direct stdin reading instead of readline")
	flagDumpTable   = pflag.Bool("dump-table", false, "Print the SLR(1) action/goto table and exit")
	flagVersion     = pflag.Bool("version", false, "Print the version and exit")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Println("calc " + version.Current)
		return
	}

	g := buildGrammar()
	lx, err := buildLexer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	parser, err := ictiobus.NewParser(g, "exp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGrammarError
		return
	}

	if *flagDumpTable {
		fmt.Println(parser.Table().String())
		return
	}

	if *flagInteractive {
		runInteractive(parser, lx)
		return
	}

	var src io.Reader = os.Stdin
	if pflag.NArg() > 0 {
		f, err := os.Open(pflag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if err := evalAndPrint(parser, lx, string(data)); err != nil {
		reportError(err)
	}
}

// evalAndPrint lexes, parses, and evaluates one expression, grounded on
// the lex -> parse -> evaluate pipeline original_source/examples/calc/calc.py
// runs for each line of input.
func evalAndPrint(parser *ictiobus.Parser, lx *lex.Lexer, src string) error {
	result, err := parser.Parse("exp", lx.Lex(src))
	if err != nil {
		return err
	}
	fmt.Println(result.(*node).Eval())
	return nil
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	switch {
	case errors.Is(err, icterrors.ErrLexing):
		returnCode = ExitLexError
	case errors.Is(err, icterrors.ErrGrammar):
		returnCode = ExitGrammarError
	default:
		returnCode = ExitParseError
	}
}

// runInteractive drives evalAndPrint off an input.LineReader, preferring
// readline's editing and history unless -d forces the plain fallback or
// the terminal can't be initialized.
func runInteractive(parser *ictiobus.Parser, lx *lex.Lexer) {
	var reader input.LineReader
	if !*flagDirect {
		if rl, err := input.NewInteractiveReader("calc> "); err == nil {
			reader = rl
		}
	}
	if reader == nil {
		reader = input.NewDirectReader(os.Stdin)
	}
	defer reader.Close()

	for {
		line, err := reader.ReadLine()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			}
			return
		}
		if err := evalAndPrint(parser, lx, line); err != nil {
			reportError(err)
		}
	}
}
