/*
List reads a bracketed, comma-separated list of integers and prints its
sum, implementing the List-1 and List-2 scenarios from the ictiobus
specification.

Usage:

	list [flags] [FILE]

The flags are:

	--dump-table
		Print the constructed SLR(1) action/goto table and exit.

With no FILE, the list is read from stdin.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dekarrin/ictiobus"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/internal/version"
	"github.com/dekarrin/ictiobus/lex"
	"github.com/dekarrin/ictiobus/token"
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
	returnCode    = ExitSuccess
	flagDumpTable = pflag.Bool("dump-table", false, "Print the SLR(1) action/goto table and exit")
	flagVersion   = pflag.Bool("version", false, "Print the version and exit")
)

var (
	tcNum      = token.NewClass("num", token.WithHuman("number"))
	tcLBracket = token.NewClass("lbracket", token.WithHuman("["))
	tcRBracket = token.NewClass("rbracket", token.WithHuman("]"))
	tcComma    = token.NewClass("comma", token.WithHuman(","))
)

// intList is the value List-1/List-2 build: an ordered slice of the
// integers between the brackets, grounded on
// original_source/examples/sum_of_list/sum.py's flat int list result.
type intList struct {
	items []int
}

func (l *intList) Sum() int {
	total := 0
	for _, v := range l.items {
		total += v
	}
	return total
}

// buildGrammar implements spec.md §8's List grammar:
//
//	list  -> LBRACKET items RBRACKET
//	items -> NUM COMMA items | NUM | ε
func buildGrammar() *grammar.Grammar {
	g := grammar.New()
	for _, c := range []token.Class{tcNum, tcLBracket, tcRBracket, tcComma} {
		g.AddTerm(c)
	}

	g.AddRule("list", []grammar.Symbol{grammar.Term(tcLBracket), grammar.NonTerm("items"), grammar.Term(tcRBracket)},
		grammar.Construct(func(args []any) any { return &intList{items: args[0].([]int)} }, 1))

	g.AddRule("items", []grammar.Symbol{grammar.Term(tcNum), grammar.Term(tcComma), grammar.NonTerm("items")},
		grammar.Construct(func(args []any) any {
			n, _ := strconv.Atoi(args[0].(token.Token).Text)
			return append([]int{n}, args[1].([]int)...)
		}, 0, 2))

	g.AddRule("items", []grammar.Symbol{grammar.Term(tcNum)},
		grammar.Construct(func(args []any) any {
			n, _ := strconv.Atoi(args[0].(token.Token).Text)
			return []int{n}
		}, 0))

	g.AddRule("items", []grammar.Symbol{}, grammar.Construct(func(args []any) any { return []int{} }))

	return g
}

func buildLexer() (*lex.Lexer, error) {
	return lex.New("default", map[string][]lex.Rule{
		"default": {
			{Pattern: `\s+`, Action: lex.Jump("")},
			{Pattern: `,`, Action: lex.Emit(tcComma)},
			{Pattern: `[0-9]+`, Action: lex.Emit(tcNum)},
			{Pattern: `\[`, Action: lex.Emit(tcLBracket)},
			{Pattern: `\]`, Action: lex.Emit(tcRBracket)},
		},
	}, nil)
}

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
		fmt.Println("list " + version.Current)
		return
	}

	g := buildGrammar()
	lx, err := buildLexer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	parser, err := ictiobus.NewParser(g, "list")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGrammarError
		return
	}

	if *flagDumpTable {
		fmt.Println(parser.Table().String())
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

	result, err := parser.Parse("list", lx.Lex(string(data)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
		return
	}

	l := result.(*intList)
	fmt.Printf("items: %v\n", l.items)
	fmt.Printf("sum: %d\n", l.Sum())
}
