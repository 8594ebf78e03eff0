package cmd

import (
	"strings"
	"testing"
)

func TestCollect_AllSections(t *testing.T) {
	stdout, _, err := runApp(t, true, "collect")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"System Info", "Network", "Firewall Profiles", "Storage", "srv01"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestCollect_SingleSection(t *testing.T) {
	stdout, _, err := runApp(t, true, "collect", "Storage")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout, "C:") {
		t.Errorf("stdout missing storage row:\n%s", stdout)
	}
	if strings.Contains(stdout, "srv01") {
		t.Errorf("stdout should not include other sections:\n%s", stdout)
	}
}

func TestCollect_SectionByLabel(t *testing.T) {
	stdout, _, err := runApp(t, true, "collect", "system info")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "srv01") {
		t.Errorf("stdout missing system row:\n%s", stdout)
	}
}

func TestCollect_UnknownSection(t *testing.T) {
	_, stderr, err := runApp(t, true, "collect", "Registry")
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
	if ExitCode(err) != ExitUser {
		t.Errorf("ExitCode() = %d, want %d", ExitCode(err), ExitUser)
	}
	if !strings.Contains(stderr, "unknown section") {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stderr, "System_Info") {
		t.Errorf("stderr should list valid sections: %q", stderr)
	}
}

func TestCollect_JSON(t *testing.T) {
	stdout, _, err := runApp(t, true, "collect", "Storage", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, `"Drive": "C:"`) {
		t.Errorf("JSON output missing row:\n%s", stdout)
	}
}

func TestCollect_JSONWithQuery(t *testing.T) {
	stdout, _, err := runApp(t, true, "collect", "Storage", "-o", "json", "-q", ".[0].table.rows | length")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(stdout); got != "1" {
		t.Errorf("query result = %q, want 1", got)
	}
}

func TestCollect_InvalidFormat(t *testing.T) {
	_, _, err := runApp(t, true, "collect", "-o", "xml")
	if err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestCollect_NotElevated(t *testing.T) {
	_, _, err := runApp(t, false, "collect")
	if err == nil {
		t.Fatal("expected error when not elevated")
	}
	if ExitCode(err) != ExitSystem {
		t.Errorf("ExitCode() = %d, want %d", ExitCode(err), ExitSystem)
	}
}
