package parse

import (
	"fmt"

	"github.com/dekarrin/ictiobus/token"
	"github.com/dekarrin/rosed"
)

// String renders the table as an ASCII grid, one row per state and one
// column per terminal then per nonterminal, grounded directly on the
// teacher's slrTable.String (parse/slr.go) which builds the same kind of
// row slice and feeds it through rosed.Edit("").InsertTableOpts.
func (t *Table) String() string {
	terms := append(t.g.Terminals(), token.EOS)
	nonterms := t.g.Nonterminals()

	header := []string{"state", "|"}
	for _, term := range terms {
		header = append(header, term.ID())
	}
	header = append(header, "|")
	header = append(header, nonterms...)

	data := [][]string{header}

	for _, s := range t.col.States {
		row := []string{fmt.Sprintf("%d", s.ID), "|"}
		for _, term := range terms {
			cell := ""
			if a, ok := t.actions[s.ID][term.ID()]; ok {
				cell = a.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonterms {
			cell := ""
			if a, ok := t.gotos[s.ID][nt]; ok {
				cell = a.String()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
