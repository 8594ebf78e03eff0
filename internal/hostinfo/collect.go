package hostinfo

import (
	"context"
	"time"
)

// commandTimeout bounds each external process or subsystem query so a hung
// cmdlet cannot stall the whole run.
const commandTimeout = 30 * time.Second

// Collector queries one OS subsystem. ID doubles as the report tab anchor, so
// it must be a valid HTML identifier (no spaces).
type Collector struct {
	ID      string
	Label   string
	Collect func(ctx context.Context) []Section
}

// Collectors returns the collectors in report tab order.
func Collectors() []Collector {
	return []Collector{
		{ID: "System_Info", Label: "System Info", Collect: collectSystem},
		{ID: "Network", Label: "Network", Collect: collectNetwork},
		{ID: "Firewall", Label: "Firewall", Collect: collectFirewall},
		{ID: "Storage", Label: "Storage", Collect: collectStorage},
	}
}

func single(t Table) []Section {
	return []Section{{Table: t}}
}
