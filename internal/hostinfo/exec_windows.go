//go:build windows

package hostinfo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// runPowerShell executes one PowerShell pipeline and returns its stdout.
// -NoProfile and -NonInteractive keep startup cheap and prevent prompts.
func runPowerShell(ctx context.Context, script string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return nil, fmt.Errorf("powershell: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("powershell: %w", err)
	}
	return stdout.Bytes(), nil
}
