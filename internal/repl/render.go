package repl

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/leengari/joydb/internal/domain/schema"
)

// RenderTable writes a result table as aligned columns. A result with no
// header and no rows prints nothing.
func RenderTable(w io.Writer, table *schema.Table) {
	header := table.Header()
	if len(header) == 0 && table.Len() == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, col := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		if col.Type != "" {
			fmt.Fprintf(tw, "%s (%s)", col.Name, col.Type)
		} else {
			fmt.Fprint(tw, col.Name)
		}
	}
	fmt.Fprintln(tw)

	for _, row := range table.Rows() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell.String())
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
