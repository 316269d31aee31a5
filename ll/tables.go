package ll

import (
	"fmt"
	"html"
	"io"
)

// PredictTableAsHTML exports the prediction table in HTML-format.
// Conflicting slots show both production serials.
func PredictTableAsHTML(ga *GrammarAnalysis, w io.Writer) {
	if ga == nil || ga.table == nil {
		tracer().Errorf("PREDICT table not yet created, cannot export to HTML")
		return
	}
	t := ga.table
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("PREDICT table of %s, size = %d<p>", html.EscapeString(ga.g.Name), t.Size()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range t.colsyms {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(a.Name)))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for i, A := range t.rowsyms {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A.Name)))
		for j := range t.colsyms {
			v1, v2 := t.matrix.Values(i, j)
			if v1 == noRule {
				td = "&nbsp;"
			} else if v2 == noRule {
				td = fmt.Sprintf("%d", v1)
			} else {
				td = fmt.Sprintf("<font color=red>%d/%d</font>", v1, v2)
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table><p>\n")
	for _, p := range ga.g.Productions() {
		io.WriteString(w, fmt.Sprintf("%d: %s<br>\n", p.Serial, html.EscapeString(p.String())))
	}
	io.WriteString(w, "</body></html>\n")
}
