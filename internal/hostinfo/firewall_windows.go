//go:build windows

package hostinfo

import (
	"context"
	"log/slog"
)

// collectFirewall returns two sections: the per-profile state, and the
// locally defined rules that are currently enabled with their port filters.
func collectFirewall(ctx context.Context) []Section {
	profiles := NewTable()
	if out, err := runPowerShell(ctx,
		`Get-NetFirewallProfile | Select-Object Name, Enabled, DefaultInboundAction, DefaultOutboundAction | ConvertTo-Json`); err == nil {
		profiles = ShapeFirewallProfiles(out)
	} else {
		slog.Debug("firewall profile query failed", "error", err)
	}

	var ruleData, portData []byte
	// PersistentStore restricts the listing to locally defined rules,
	// excluding the group-policy store.
	if out, err := runPowerShell(ctx,
		`Get-NetFirewallRule -PolicyStore PersistentStore | Select-Object InstanceID, DisplayName, Enabled, Direction, Action, Profile | ConvertTo-Json -Depth 3`); err == nil {
		ruleData = out
	} else {
		slog.Debug("firewall rule query failed", "error", err)
	}
	if out, err := runPowerShell(ctx,
		`Get-NetFirewallPortFilter -PolicyStore PersistentStore | Select-Object InstanceID, Protocol, LocalPort | ConvertTo-Json -Depth 3`); err == nil {
		portData = out
	} else {
		slog.Debug("firewall port filter query failed", "error", err)
	}

	return []Section{
		{Title: "Firewall Profiles", Table: profiles},
		{Title: "Enabled Firewall Rules", Table: ShapeFirewallRules(ruleData, portData)},
	}
}
