// Package hostinfo collects local host information as uniform tables.
//
// Each collector queries one OS subsystem and shapes the result into a Table:
// an ordered field set plus zero or more records. Collection failures degrade
// to an empty Table; absence of rows is the only failure signal callers see.
package hostinfo

// Record maps field names to display-ready string values. Booleans are
// pre-rendered as Yes/No and sizes with two decimals at shaping time, so the
// renderer never needs type information.
type Record map[string]string

// Table is an ordered sequence of records sharing one field set. Field order
// determines column order everywhere the table is displayed.
type Table struct {
	Fields []string `json:"fields" yaml:"fields"`
	Rows   []Record `json:"rows" yaml:"rows"`
}

// NewTable returns an empty table with the given field order.
func NewTable(fields ...string) Table {
	return Table{Fields: fields}
}

// Append adds one record. Missing fields render as empty cells; extra keys
// are ignored by consumers, which iterate Fields.
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Section is a titled table within a report tab. Most collectors emit a
// single untitled section; the firewall collector emits two.
type Section struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Table Table  `json:"table" yaml:"table"`
}

// YesNo renders a boolean the way the report displays flags.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
