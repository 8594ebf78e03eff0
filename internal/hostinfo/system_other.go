//go:build !windows

package hostinfo

import "context"

// Registry and WMI are Windows-only; elsewhere the generic summary stands on
// its own.
func platformSystemDetails(context.Context) []kv {
	return nil
}
