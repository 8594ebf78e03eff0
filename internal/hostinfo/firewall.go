package hostinfo

import (
	"encoding/json"
	"sort"
	"strings"
)

// firewallProfileRow mirrors Get-NetFirewallProfile output. Enabled arrives
// as a bool from some PowerShell versions and as a GpoBoolean number from
// others, hence the tolerant type.
type firewallProfileRow struct {
	Name                  string    `json:"Name"`
	Enabled               looseBool `json:"Enabled"`
	DefaultInboundAction  psEnum    `json:"DefaultInboundAction"`
	DefaultOutboundAction psEnum    `json:"DefaultOutboundAction"`
}

// firewallRuleRow mirrors Get-NetFirewallRule output.
type firewallRuleRow struct {
	InstanceID  string    `json:"InstanceID"`
	DisplayName string    `json:"DisplayName"`
	Enabled     looseBool `json:"Enabled"`
	Direction   psEnum    `json:"Direction"`
	Action      psEnum    `json:"Action"`
	Profile     psEnum    `json:"Profile"`
}

// firewallPortRow mirrors Get-NetFirewallPortFilter output. LocalPort is a
// string for single-port rules and an array otherwise.
type firewallPortRow struct {
	InstanceID string      `json:"InstanceID"`
	Protocol   string      `json:"Protocol"`
	LocalPort  stringOrSet `json:"LocalPort"`
}

// looseBool accepts JSON true/false as well as 0/1/2 (NetSecurity's
// GpoBoolean, where 1 means True).
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = looseBool(v)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = n == 1
	return nil
}

// psEnum accepts either the numeric enum value or its display string.
type psEnum struct {
	Number int
	Text   string
}

func (e *psEnum) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &e.Number); err == nil {
		return nil
	}
	return json.Unmarshal(data, &e.Text)
}

// stringOrSet accepts a bare string or an array of strings.
type stringOrSet []string

func (s *stringOrSet) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = stringOrSet{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = stringOrSet(many)
	return nil
}

func directionLabel(e psEnum) string {
	if e.Text != "" {
		return e.Text
	}
	switch e.Number {
	case 1:
		return "Inbound"
	case 2:
		return "Outbound"
	}
	return ""
}

func actionLabel(e psEnum) string {
	if e.Text != "" {
		return e.Text
	}
	switch e.Number {
	case 2:
		return "Allow"
	case 4:
		return "Block"
	}
	return ""
}

// profileLabel expands the NetSecurity profile bitmask. Zero means the rule
// applies to any profile.
func profileLabel(e psEnum) string {
	if e.Text != "" {
		return e.Text
	}
	if e.Number == 0 {
		return "Any"
	}
	var parts []string
	if e.Number&1 != 0 {
		parts = append(parts, "Domain")
	}
	if e.Number&2 != 0 {
		parts = append(parts, "Private")
	}
	if e.Number&4 != 0 {
		parts = append(parts, "Public")
	}
	return strings.Join(parts, ", ")
}

// ShapeFirewallProfiles decodes profile JSON into the per-profile table.
func ShapeFirewallProfiles(data []byte) Table {
	t := NewTable("Profile", "Enabled", "DefaultInboundAction", "DefaultOutboundAction")
	for _, row := range decodeObjectOrArray[firewallProfileRow](data) {
		t.Append(Record{
			"Profile":               row.Name,
			"Enabled":               YesNo(bool(row.Enabled)),
			"DefaultInboundAction":  actionLabel(row.DefaultInboundAction),
			"DefaultOutboundAction": actionLabel(row.DefaultOutboundAction),
		})
	}
	return t
}

// ShapeFirewallRules decodes rule and port-filter JSON into the rules table.
// Only enabled rules are kept; port details join on InstanceID; the result
// sorts by display name for a stable report.
func ShapeFirewallRules(ruleData, portData []byte) Table {
	ports := make(map[string]firewallPortRow)
	for _, row := range decodeObjectOrArray[firewallPortRow](portData) {
		ports[row.InstanceID] = row
	}

	rules := decodeObjectOrArray[firewallRuleRow](ruleData)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].DisplayName < rules[j].DisplayName
	})

	t := NewTable("Name", "Direction", "Action", "Profile", "Protocol", "LocalPort")
	for _, rule := range rules {
		if !bool(rule.Enabled) {
			continue
		}
		rec := Record{
			"Name":      rule.DisplayName,
			"Direction": directionLabel(rule.Direction),
			"Action":    actionLabel(rule.Action),
			"Profile":   profileLabel(rule.Profile),
		}
		if p, ok := ports[rule.InstanceID]; ok {
			rec["Protocol"] = p.Protocol
			rec["LocalPort"] = strings.Join(p.LocalPort, ", ")
		}
		t.Append(rec)
	}
	return t
}
