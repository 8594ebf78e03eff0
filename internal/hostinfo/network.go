package hostinfo

import (
	"context"
	"encoding/json"
	"net"
	"strings"
)

const addressSeparator = "; "

// AdapterBinding is one interface's IPv6 binding state as reported by
// Get-NetAdapterBinding -ComponentID ms_tcpip6, plus the adapter description
// from the same lookup.
type AdapterBinding struct {
	Name        string
	Description string
	IPv6Enabled bool
}

// collectNetwork emits one record per non-loopback interface that is up.
// Multi-valued address lists are joined into a single delimited string; the
// IPv6Enabled flag comes from a secondary per-interface binding lookup.
func collectNetwork(ctx context.Context) []Section {
	ifaces, err := net.Interfaces()
	if err != nil {
		return single(NewTable())
	}

	bindings := adapterBindings(ctx)
	dhcp := dhcpStates(ctx)

	t := NewTable("Interface", "Description", "MACAddress", "IPv4Address", "DHCPEnabled", "IPv6Address", "IPv6Enabled")
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		var v4s, v6s []string
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok || ipnet.IP.IsLoopback() {
				continue
			}
			if ipnet.IP.To4() != nil {
				v4s = append(v4s, ipnet.IP.String())
			} else {
				v6s = append(v6s, ipnet.IP.String())
			}
		}

		t.Append(networkRecord(iface.Name, iface.HardwareAddr.String(), v4s, v6s, bindings, dhcp))
	}

	return single(t)
}

// networkRecord shapes one interface row. When no binding entry exists for
// the interface (lookup failed or non-Windows), the presence of any IPv6
// address decides the flag. The DHCP cell stays empty when the state is
// unknown.
func networkRecord(name, mac string, v4s, v6s []string, bindings map[string]AdapterBinding, dhcp map[string]bool) Record {
	description := name
	ipv6Enabled := len(v6s) > 0
	if b, ok := bindings[name]; ok {
		ipv6Enabled = b.IPv6Enabled
		if b.Description != "" {
			description = b.Description
		}
	}

	dhcpCell := ""
	if enabled, ok := dhcp[name]; ok {
		dhcpCell = YesNo(enabled)
	}

	return Record{
		"Interface":   name,
		"Description": description,
		"MACAddress":  mac,
		"IPv4Address": strings.Join(v4s, addressSeparator),
		"DHCPEnabled": dhcpCell,
		"IPv6Address": strings.Join(v6s, addressSeparator),
		"IPv6Enabled": YesNo(ipv6Enabled),
	}
}

// adapterBindingRow mirrors the fields selected from Get-NetAdapterBinding.
type adapterBindingRow struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Enabled     bool   `json:"Enabled"`
}

// ParseAdapterBindings decodes ConvertTo-Json output for adapter bindings.
// PowerShell emits a bare object instead of an array when exactly one
// adapter matches, so both shapes are accepted.
func ParseAdapterBindings(data []byte) map[string]AdapterBinding {
	rows := decodeObjectOrArray[adapterBindingRow](data)
	if len(rows) == 0 {
		return nil
	}

	bindings := make(map[string]AdapterBinding, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		bindings[row.Name] = AdapterBinding{
			Name:        row.Name,
			Description: row.Description,
			IPv6Enabled: row.Enabled,
		}
	}
	return bindings
}

// dhcpRow mirrors the fields selected from Get-NetIPInterface. Dhcp is the
// enum number (1 Enabled, 2 Disabled) or its display string depending on the
// PowerShell version.
type dhcpRow struct {
	InterfaceAlias string `json:"InterfaceAlias"`
	Dhcp           psEnum `json:"Dhcp"`
}

// ParseDhcpStates decodes ConvertTo-Json output for per-interface DHCP
// state, keyed by interface alias.
func ParseDhcpStates(data []byte) map[string]bool {
	rows := decodeObjectOrArray[dhcpRow](data)
	if len(rows) == 0 {
		return nil
	}

	states := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.InterfaceAlias == "" {
			continue
		}
		states[row.InterfaceAlias] = row.Dhcp.Number == 1 || strings.EqualFold(row.Dhcp.Text, "Enabled")
	}
	return states
}

// decodeObjectOrArray unmarshals JSON that may be either a single object or
// an array of objects.
func decodeObjectOrArray[T any](data []byte) []T {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}

	var rows []T
	if err := json.Unmarshal([]byte(trimmed), &rows); err == nil {
		return rows
	}

	var row T
	if err := json.Unmarshal([]byte(trimmed), &row); err == nil {
		return []T{row}
	}
	return nil
}
