package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/asp/isa"
)

// WriteListing writes a table of each instruction's address, encoding and
// origin. The source function, if set, returns the text of a source line.
func WriteListing(w io.Writer, prog *isa.Program, source func(lineno int) string) (err error) {
	listing := table.NewWriter()
	listing.AppendHeader(table.Row{"Addr", "Binary", "Hex", "Assembly", "Line", "Source"})

	for addr, inst := range prog.Codes() {
		var word isa.Word
		word, err = inst.Encode()
		if err != nil {
			return
		}

		row := table.Row{
			addr,
			fmt.Sprintf("%0*b", isa.WORD_BITS, word),
			fmt.Sprintf("%0*X", hexDigits, word),
			inst.String(),
			"",
			"",
		}
		if lineno, ok := prog.Source(addr); ok {
			row[4] = lineno
			if source != nil {
				row[5] = strings.TrimSpace(source(lineno))
			}
		}
		listing.AppendRow(row)
	}

	_, err = io.WriteString(w, listing.Render()+"\n")
	return
}
