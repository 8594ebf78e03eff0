//go:build !windows

package hostinfo

import "context"

// The NetSecurity cmdlets are Windows-only. Empty sections render as the
// standard placeholder.
func collectFirewall(context.Context) []Section {
	return []Section{
		{Title: "Firewall Profiles", Table: NewTable()},
		{Title: "Enabled Firewall Rules", Table: NewTable()},
	}
}
