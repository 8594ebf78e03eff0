//go:build windows

package hostinfo

import (
	"context"
	"log/slog"
)

// adapterBindings queries the ms_tcpip6 binding state per adapter. The result
// keys on the adapter name so it can be joined against net.Interfaces.
func adapterBindings(ctx context.Context) map[string]AdapterBinding {
	out, err := runPowerShell(ctx,
		`Get-NetAdapterBinding -ComponentID ms_tcpip6 | Select-Object Name, Description, Enabled | ConvertTo-Json`)
	if err != nil {
		slog.Debug("adapter binding query failed", "error", err)
		return nil
	}
	return ParseAdapterBindings(out)
}

// dhcpStates queries per-interface DHCP state for IPv4, keyed by interface
// alias so it can be joined against net.Interfaces.
func dhcpStates(ctx context.Context) map[string]bool {
	out, err := runPowerShell(ctx,
		`Get-NetIPInterface -AddressFamily IPv4 | Select-Object InterfaceAlias, Dhcp | ConvertTo-Json`)
	if err != nil {
		slog.Debug("dhcp state query failed", "error", err)
		return nil
	}
	return ParseDhcpStates(out)
}
