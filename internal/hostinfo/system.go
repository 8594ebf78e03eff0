package hostinfo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// kv is an ordered key/value pair for the system summary. A plain slice keeps
// insertion order, unlike a map.
type kv struct {
	key   string
	value string
}

// collectSystem builds the host summary as Setting/Value pairs: OS identity
// and build, hardware identity, CPU, memory, and uptime. Platform-specific
// details (registry, WMI) come from platformSystemDetails.
func collectSystem(ctx context.Context) []Section {
	t := NewTable("Setting", "Value")
	add := func(key, value string) {
		if value == "" {
			return
		}
		t.Append(Record{"Setting": key, "Value": value})
	}

	if hostname, err := os.Hostname(); err == nil {
		add("Hostname", hostname)
	}

	if info, err := host.InfoWithContext(ctx); err == nil {
		add("Operating System", fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion))
		add("Kernel Version", info.KernelVersion)
		add("Boot Time", time.Unix(int64(info.BootTime), 0).Format("2006-01-02 15:04:05"))
		add("Uptime", (time.Duration(info.Uptime) * time.Second).String())
	} else {
		slog.Debug("host info unavailable", "error", err)
	}

	add("Architecture", runtime.GOARCH)

	// Registry and WMI details override the generic platform strings where
	// present, so they come after the gopsutil values.
	for _, d := range platformSystemDetails(ctx) {
		add(d.key, d.value)
	}

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		add("Processor", cpus[0].ModelName)
		add("Processor Cores", fmt.Sprintf("%d", cpus[0].Cores))
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		add("Physical Memory", fmt.Sprintf("%.2f GB", bytesToGB(vm.Total)))
	}

	return single(t)
}
