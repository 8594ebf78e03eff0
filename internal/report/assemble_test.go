package report

import (
	"strings"
	"testing"
	"time"
)

var testTabs = []Tab{
	{ID: "System_Info", Label: "System Info", Content: "<p>system</p>"},
	{ID: "Network", Label: "Network", Content: "<p>network</p>"},
	{ID: "Printers", Label: "Printers", Content: NotImplemented()},
}

func testTime() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func TestAssemble_Structure(t *testing.T) {
	doc := Assemble("srv01", testTime(), testTabs)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="utf-8">`,
		"<title>Host Report - srv01</title>",
		"function showTab(name)",
		"Generated 2026-03-14 09:30:00",
		"</html>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestAssemble_ButtonsAndPanes(t *testing.T) {
	doc := Assemble("srv01", testTime(), testTabs)

	for _, tab := range testTabs {
		button := "<button id='btn_" + tab.ID + "' class='tab-button' onclick=\"showTab('" + tab.ID + "')\">" + tab.Label + "</button>"
		if !strings.Contains(doc, button) {
			t.Errorf("missing button for %s:\n%s", tab.ID, button)
		}
		pane := "<div id='" + tab.ID + "' class='tab'>"
		if !strings.Contains(doc, pane) {
			t.Errorf("missing pane for %s", tab.ID)
		}
		if !strings.Contains(doc, tab.Content) {
			t.Errorf("missing content for %s", tab.ID)
		}
	}
}

func TestAssemble_TabOrder(t *testing.T) {
	doc := Assemble("srv01", testTime(), testTabs)

	last := -1
	for _, tab := range testTabs {
		idx := strings.Index(doc, "btn_"+tab.ID)
		if idx < 0 {
			t.Fatalf("button for %s not found", tab.ID)
		}
		if idx < last {
			t.Errorf("button %s out of order", tab.ID)
		}
		last = idx
	}
}

func TestAssemble_FirstTabShownOnLoad(t *testing.T) {
	doc := Assemble("srv01", testTime(), testTabs)

	if !strings.Contains(doc, "<script>showTab('System_Info');</script>") {
		t.Errorf("first tab should be activated on load")
	}
}

func TestAssemble_EscapesHostname(t *testing.T) {
	doc := Assemble(`srv<&>`, testTime(), testTabs)

	if !strings.Contains(doc, "Host Report - srv&lt;&amp;&gt;") {
		t.Errorf("hostname not escaped in output")
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	when := testTime()
	first := Assemble("srv01", when, testTabs)
	for i := 0; i < 5; i++ {
		if Assemble("srv01", when, testTabs) != first {
			t.Fatal("Assemble output is not deterministic")
		}
	}
}

func TestAssemble_NoTabs(t *testing.T) {
	doc := Assemble("srv01", testTime(), nil)
	if strings.Contains(doc, "<script>showTab(") {
		t.Errorf("no load hook expected without tabs")
	}
}
