//go:build !windows

package hostinfo

import "context"

// The NetAdapter cmdlets are Windows-only; without them the IPv6 flag falls
// back to address presence.
func adapterBindings(context.Context) map[string]AdapterBinding {
	return nil
}

func dhcpStates(context.Context) map[string]bool {
	return nil
}
