package report

import (
	"fmt"
	"strings"
	"time"
)

// Tab is one report tab. ID is the HTML anchor (no spaces); Label is the
// button text; Content is a pre-rendered HTML fragment.
type Tab struct {
	ID      string
	Label   string
	Content string
}

const styles = `body { font-family: "Segoe UI", Arial, sans-serif; margin: 20px; background: #f4f4f4; color: #222; }
h1 { font-size: 1.5em; }
h3 { margin-bottom: 6px; }
table { border-collapse: collapse; margin-bottom: 16px; background: #fff; }
th, td { border: 1px solid #bbb; padding: 6px 10px; text-align: left; font-size: 0.9em; }
th { background: #2c3e50; color: #fff; }
tr:nth-child(even) td { background: #f0f4f8; }
.not-installed, .not-implemented { color: #c0392b; }
.tab { display: none; }
.tab-button { padding: 8px 14px; margin-right: 4px; border: 1px solid #bbb; border-bottom: none; background: #ddd; cursor: pointer; }
.tab-button.active { background: #fff; font-weight: bold; }
.footer { margin-top: 24px; font-size: 0.8em; color: #777; }`

const script = `function showTab(name) {
  var tabs = document.getElementsByClassName('tab');
  for (var i = 0; i < tabs.length; i++) { tabs[i].style.display = 'none'; }
  var buttons = document.getElementsByClassName('tab-button');
  for (var i = 0; i < buttons.length; i++) { buttons[i].classList.remove('active'); }
  document.getElementById(name).style.display = 'block';
  document.getElementById('btn_' + name).classList.add('active');
}`

// Assemble builds the complete report document from the ordered tabs. The
// first tab is shown on load. Output is deterministic for a fixed tab slice
// and generation time.
func Assemble(hostname string, generated time.Time, tabs []Tab) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&b, "<title>Host Report - %s</title>\n", esc(hostname))
	b.WriteString("<style>\n" + styles + "\n</style>\n")
	b.WriteString("<script>\n" + script + "\n</script>\n")
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>Host Report - %s</h1>\n", esc(hostname))

	b.WriteString("<div class='tab-buttons'>\n")
	for _, t := range tabs {
		fmt.Fprintf(&b, "<button id='btn_%s' class='tab-button' onclick=\"showTab('%s')\">%s</button>\n",
			t.ID, t.ID, esc(t.Label))
	}
	b.WriteString("</div>\n")

	for _, t := range tabs {
		fmt.Fprintf(&b, "<div id='%s' class='tab'>\n%s</div>\n", t.ID, t.Content)
	}

	if len(tabs) > 0 {
		fmt.Fprintf(&b, "<script>showTab('%s');</script>\n", tabs[0].ID)
	}

	fmt.Fprintf(&b, "<p class='footer'>Generated %s</p>\n", generated.Format("2006-01-02 15:04:05"))
	b.WriteString("</body>\n</html>\n")

	return b.String()
}
