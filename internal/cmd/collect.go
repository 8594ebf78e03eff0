package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/opsgrove/hostreport/internal/errors"
	"github.com/opsgrove/hostreport/internal/hostinfo"
)

// newCollectCmd prints collected data to stdout instead of the HTML report.
// Useful for scripting and for inspecting one section at a time.
func newCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect [section]",
		Short: "Print collected host data to stdout",
		Long: `Collect host data and print it in the selected output format
instead of writing the HTML report.

With no argument, all sections are collected. Section names match the
report tabs: System_Info, Network, Firewall, Storage.

Example:
  hostreport collect
  hostreport collect Storage -o json
  hostreport collect Network -o json -q '.[0].table.rows'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !elevatedFn() {
				return clierrors.NewPrivilegeError()
			}

			collectors := collectorsFn()
			if len(args) == 1 {
				c, err := findCollector(collectors, args[0])
				if err != nil {
					return err
				}
				collectors = []hostinfo.Collector{c}
			}

			var sections []hostinfo.Section
			for _, c := range collectors {
				for _, s := range c.Collect(ctx) {
					if s.Title == "" {
						s.Title = c.Label
					}
					sections = append(sections, s)
				}
			}

			return printerForContext(ctx).Print(ctx, sections)
		},
	}
}

func findCollector(collectors []hostinfo.Collector, name string) (hostinfo.Collector, error) {
	var ids []string
	for _, c := range collectors {
		if strings.EqualFold(c.ID, name) || strings.EqualFold(c.Label, name) {
			return c, nil
		}
		ids = append(ids, c.ID)
	}
	return hostinfo.Collector{}, clierrors.NewUserError(
		fmt.Sprintf("unknown section %q", name),
		"Use one of: "+strings.Join(ids, ", "),
	)
}
