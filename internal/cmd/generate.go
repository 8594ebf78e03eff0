package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	clierrors "github.com/opsgrove/hostreport/internal/errors"
	"github.com/opsgrove/hostreport/internal/hostinfo"
	"github.com/opsgrove/hostreport/internal/privilege"
	"github.com/opsgrove/hostreport/internal/report"
	"github.com/opsgrove/hostreport/internal/ui"
)

// Seams for tests.
var (
	elevatedFn   = privilege.Elevated
	collectorsFn = hostinfo.Collectors
)

// reservedTabs are the sections that appear in the report but have no
// collector yet.
var reservedTabs = []hostinfo.Collector{
	{ID: "Applications", Label: "Applications"},
	{ID: "Server_Roles", Label: "Server Roles"},
	{ID: "Shares", Label: "Shares"},
	{ID: "Printers", Label: "Printers"},
}

type generateOptions struct {
	reportPath string
	quiet      bool
}

// runGenerate is the default command: collect everything and write the HTML
// report. The privilege check happens before any collection or file I/O.
func runGenerate(ctx context.Context, opts generateOptions) error {
	if !elevatedFn() {
		return clierrors.NewPrivilegeError()
	}

	cfg := ConfigFromContext(ctx)

	path := opts.reportPath
	if path == "" && cfg != nil {
		path = cfg.ReportPath
	}
	if path == "" {
		path = report.DefaultPath()
	}

	hostname, _ := os.Hostname()
	doc := report.Assemble(hostname, time.Now(), buildTabs(ctx))

	if err := report.Write(path, doc); err != nil {
		return clierrors.WrapUserError(err, "failed to write report",
			"Check that the directory is writable")
	}

	if !opts.quiet {
		ui.FromContext(ctx).Success("Report written to %s", path)
	}
	// When stdout is piped, emit the path alone for scripting.
	if out := stdoutFromContext(ctx); !isTerminal(out) {
		_, _ = fmt.Fprintln(out, path)
	}
	return nil
}

// buildTabs runs every collector and appends the reserved tabs, preserving
// the fixed tab order. Disabled sections keep their tab with an empty body so
// the layout stays stable.
func buildTabs(ctx context.Context) []report.Tab {
	cfg := ConfigFromContext(ctx)

	var tabs []report.Tab
	for _, c := range collectorsFn() {
		tab := report.Tab{ID: c.ID, Label: c.Label}
		if cfg != nil && cfg.SectionDisabled(c.ID) {
			slog.Debug("section disabled by config", "section", c.ID)
			tab.Content = report.TabContent(nil)
		} else {
			tab.Content = report.TabContent(c.Collect(ctx))
		}
		tabs = append(tabs, tab)
	}

	for _, r := range reservedTabs {
		tabs = append(tabs, report.Tab{ID: r.ID, Label: r.Label, Content: report.NotImplemented()})
	}

	return tabs
}
