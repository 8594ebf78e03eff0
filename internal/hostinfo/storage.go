package hostinfo

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/shirou/gopsutil/v4/disk"
)

func bytesToGB(b uint64) float64 {
	return float64(b) / (1 << 30)
}

func roundGB(v float64) float64 {
	return math.Round(v*100) / 100
}

// shapeVolume builds one volume row. Total is derived from the rounded free
// and used figures rather than the raw byte total, so the three columns
// always reconcile exactly in the report.
func shapeVolume(drive, fstype string, freeBytes, usedBytes uint64) Record {
	free := roundGB(bytesToGB(freeBytes))
	used := roundGB(bytesToGB(usedBytes))
	return Record{
		"Drive":      drive,
		"FileSystem": fstype,
		"FreeGB":     fmt.Sprintf("%.2f", free),
		"UsedGB":     fmt.Sprintf("%.2f", used),
		"TotalGB":    fmt.Sprintf("%.2f", free+used),
	}
}

// collectStorage emits one row per mounted volume with capacity figures in
// gigabytes. Volumes whose usage cannot be read (card readers with no media,
// access-denied mounts) are skipped.
func collectStorage(ctx context.Context) []Section {
	t := NewTable("Drive", "FileSystem", "FreeGB", "UsedGB", "TotalGB")

	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		slog.Debug("partition listing failed", "error", err)
		return single(t)
	}

	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			slog.Debug("volume usage unavailable", "mountpoint", p.Mountpoint, "error", err)
			continue
		}
		t.Append(shapeVolume(p.Mountpoint, usage.Fstype, usage.Free, usage.Used))
	}

	return single(t)
}
