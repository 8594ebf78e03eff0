// Package report renders collected host tables into a single self-contained
// tabbed HTML document.
package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/opsgrove/hostreport/internal/hostinfo"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// notInstalled is the fragment shown in place of a table with no rows.
const notInstalled = `<p class="not-installed"><b>Not Installed</b></p>`

// notImplemented is the body of tabs whose collector does not exist yet.
const notImplemented = `<p class="not-implemented">Not Implemented Yet</p>`

// RenderTable renders one table as an HTML fragment. An empty table renders
// the Not Installed placeholder instead of a headers-only skeleton. All cell
// and header text is escaped.
func RenderTable(t hostinfo.Table) string {
	if t.Empty() {
		return notInstalled
	}

	var b strings.Builder
	b.WriteString("<table>\n<tr>")
	for _, f := range t.Fields {
		fmt.Fprintf(&b, "<th>%s</th>", esc(f))
	}
	b.WriteString("</tr>\n")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, f := range t.Fields {
			fmt.Fprintf(&b, "<td>%s</td>", esc(row[f]))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// TabContent renders a tab body from its sections. Section titles become
// headings above their tables; untitled sections render the table alone.
func TabContent(sections []hostinfo.Section) string {
	var b strings.Builder
	for _, s := range sections {
		if s.Title != "" {
			fmt.Fprintf(&b, "<h3>%s</h3>\n", esc(s.Title))
		}
		b.WriteString(RenderTable(s.Table))
	}
	return b.String()
}

// NotImplemented returns the body for a reserved tab.
func NotImplemented() string {
	return notImplemented
}
