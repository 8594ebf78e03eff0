package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/opsgrove/hostreport/internal/hostinfo"
)

func sampleSections() []hostinfo.Section {
	tbl := hostinfo.NewTable("Drive", "FreeGB")
	tbl.Append(hostinfo.Record{"Drive": "C:", "FreeGB": "10.00"})
	tbl.Append(hostinfo.Record{"Drive": "D:", "FreeGB": "250.50"})
	return []hostinfo.Section{{Title: "Storage", Table: tbl}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"  yaml  ", FormatYAML, false},
		{"table", FormatTable, false},
		{"xml", "", true},
		{"ndjson", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPrint_Text(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	if err := p.Print(context.Background(), sampleSections()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Storage") {
		t.Errorf("missing section title: %s", out)
	}
	if !strings.Contains(out, "Drive") || !strings.Contains(out, "250.50") {
		t.Errorf("missing table content: %s", out)
	}
}

func TestPrint_TableUppercasesHeaders(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	if err := p.Print(context.Background(), sampleSections()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if !strings.Contains(buf.String(), "DRIVE") {
		t.Errorf("table format should uppercase headers: %s", buf.String())
	}
}

func TestPrint_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	if err := p.Print(context.Background(), sampleSections()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"title": "Storage"`) {
		t.Errorf("missing title in JSON: %s", out)
	}
	if !strings.Contains(out, `"Drive": "C:"`) {
		t.Errorf("missing row in JSON: %s", out)
	}
}

func TestPrint_JSONWithQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	ctx := WithQuery(context.Background(), ".[0].table.rows | length")
	if err := p.Print(ctx, sampleSections()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "2" {
		t.Errorf("query result = %q, want 2", got)
	}
}

func TestPrint_JSONWithInvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	ctx := WithQuery(context.Background(), ".[")
	err := p.Print(ctx, sampleSections())
	if err == nil {
		t.Fatal("expected error for invalid query")
	}
	if !strings.Contains(err.Error(), "invalid --query") {
		t.Errorf("error = %v, want invalid --query", err)
	}
}

func TestPrint_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	if err := p.Print(context.Background(), sampleSections()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "title: Storage") {
		t.Errorf("missing title in YAML: %s", out)
	}
	if !strings.Contains(out, "Drive: 'C:'") && !strings.Contains(out, `Drive: "C:"`) && !strings.Contains(out, "Drive: C:") {
		t.Errorf("missing row in YAML: %s", out)
	}
}

func TestPrint_EmptySection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	sections := []hostinfo.Section{{Title: "Firewall Rules", Table: hostinfo.NewTable("Name")}}
	if err := p.Print(context.Background(), sections); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if !strings.Contains(buf.String(), "(none)") {
		t.Errorf("empty section should print placeholder: %s", buf.String())
	}
}

func TestPrint_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Format("xml"))

	if err := p.Print(context.Background(), sampleSections()); err == nil {
		t.Error("expected error for unsupported format")
	}
}
