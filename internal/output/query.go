package output

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// printJSON outputs data as pretty-printed JSON.
// If a jq query is present in the context, it filters the output.
func (p *Printer) printJSON(ctx context.Context, data interface{}) error {
	query := QueryFromContext(ctx)
	if query == "" {
		enc := json.NewEncoder(p.w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return p.runQuery(query, data)
}

// runQuery normalizes data to map/slice form, runs a gojq query, and writes
// each result as indented JSON.
func (p *Printer) runQuery(query string, data interface{}) error {
	normalized, err := normalizeToInterface(data)
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return formatInvalidQueryErr(err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return formatInvalidQueryErr(err)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %s", queryErr)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	return nil
}

// normalizeToInterface round-trips data through JSON so gojq sees only
// map[string]interface{} and []interface{} values.
func normalizeToInterface(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func formatInvalidQueryErr(err error) error {
	if err == nil {
		return fmt.Errorf("invalid --query")
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	if strings.Contains(msg, "unexpected eof") {
		return fmt.Errorf("invalid --query: %w\nHint: query looks incomplete; quote it fully", err)
	}

	return fmt.Errorf("invalid --query: %w", err)
}
